package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, "insert user")
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error, "update user")
}

func (r *UserRepository) findBy(ctx context.Context, column string, value any) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&user).Error; err != nil {
		return nil, translate(err, "find user")
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return r.findBy(ctx, "id", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return r.findBy(ctx, "user_name", userName)
}

func (r *UserRepository) FindByPhoneNo(ctx context.Context, phoneNo string) (*domain.User, error) {
	return r.findBy(ctx, "phone_no", phoneNo)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, translate(err, "list users")
	}
	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	return deleted(r.db.WithContext(ctx).Delete(&domain.User{}, id), "delete user")
}
