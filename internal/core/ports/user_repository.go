package ports

import (
	"context"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Lookups return
// domain.ErrNotFound when no row matches; Create returns
// domain.ErrDuplicate on a unique-key violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	FindByPhoneNo(ctx context.Context, phoneNo string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int) error
}
