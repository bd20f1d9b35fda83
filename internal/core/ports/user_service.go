package ports

import (
	"context"
	"time"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

// RegisterInput carries the sign-up form.
type RegisterInput struct {
	FullName    string
	UserName    string
	CountryCode string
	PhoneNo     string
	Email       string
	Dob         time.Time
	Gender      int
	Password    string
}

// RegisterResult reports whether a new account was created or an
// unverified one was refreshed.
type RegisterResult struct {
	User    *domain.User
	Created bool
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error)
	VerifyEmail(ctx context.Context, userName, code string) error
	UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) error
}
