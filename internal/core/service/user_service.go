package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// UserService implements registration, login, e-mail verification and
// account administration.
type UserService struct {
	repo      ports.UserRepository
	hasher    ports.PasswordHasher
	codes     ports.VerificationCodeStore
	mailer    ports.Mailer
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// UserDeps groups the collaborators of UserService.
type UserDeps struct {
	Repo      ports.UserRepository
	Hasher    ports.PasswordHasher
	Codes     ports.VerificationCodeStore
	Mailer    ports.Mailer
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

func NewUserService(deps UserDeps) *UserService {
	if deps.TokenTTL <= 0 {
		deps.TokenTTL = defaultTokenTTL
	}
	return &UserService{
		repo:      deps.Repo,
		hasher:    deps.Hasher,
		codes:     deps.Codes,
		mailer:    deps.Mailer,
		jwtSecret: deps.JWTSecret,
		tokenTTL:  deps.TokenTTL,
		logger:    deps.Logger,
	}
}

// Register creates the account, or refreshes an existing unverified one
// registered with the same e-mail, then sends a fresh verification code.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	if in.FullName == "" || in.UserName == "" || in.CountryCode == "" || in.PhoneNo == "" ||
		in.Email == "" || in.Dob.IsZero() || in.Password == "" {
		return nil, domain.NewError(domain.KindValidation, "All fields are required")
	}

	if _, err := s.repo.FindByUserName(ctx, in.UserName); err == nil {
		return nil, domain.Errorf(domain.KindConflict, "User already registered with this username: %s", in.UserName)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsEmailVerified {
		return nil, domain.Errorf(domain.KindConflict, "User already registered with this email: %s", in.Email)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		previousName := existing.FullName
		applyRegistration(existing, in, hash)
		if err := s.repo.Update(ctx, existing); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return nil, domain.Errorf(domain.KindConflict, "User already registered with this phone number: %s", in.PhoneNo)
			}
			return nil, err
		}
		if err := s.issueCode(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info().Int("user_id", existing.ID).Msg("unverified registration refreshed")
		refreshed := *existing
		refreshed.FullName = previousName
		return &ports.RegisterResult{User: &refreshed, Created: false}, nil
	}

	if _, err := s.repo.FindByPhoneNo(ctx, in.PhoneNo); err == nil {
		return nil, domain.Errorf(domain.KindConflict, "User already registered with this phone number: %s", in.PhoneNo)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{Role: domain.RoleUser}
	applyRegistration(user, in, hash)
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewError(domain.KindConflict, "User already registered")
		}
		return nil, err
	}
	if err := s.issueCode(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("user_name", user.UserName).Msg("user registered")
	return &ports.RegisterResult{User: user, Created: true}, nil
}

func applyRegistration(u *domain.User, in ports.RegisterInput, hash string) {
	u.FullName = in.FullName
	u.UserName = in.UserName
	u.CountryCode = in.CountryCode
	u.PhoneNo = in.PhoneNo
	u.IsPhoneNoVerified = false
	u.Email = in.Email
	u.IsEmailVerified = false
	u.Dob = in.Dob
	u.Gender = in.Gender
	u.PasswordHash = hash
}

// issueCode stores a new 6-digit code and mails it to the user.
func (s *UserService) issueCode(ctx context.Context, u *domain.User) error {
	code, err := verificationCode()
	if err != nil {
		return err
	}
	if err := s.codes.Save(ctx, u.UserName, code); err != nil {
		return err
	}
	return s.mailer.SendVerificationCode(ctx, ports.VerificationEmail{
		To:       u.Email,
		FullName: u.FullName,
		Code:     code,
	})
}

// verificationCode returns a uniformly random code in [100000, 999999].
func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.login(ctx, email, password, false)
}

// AdminLogin rejects non-admin accounts before checking the password.
func (s *UserService) AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.login(ctx, email, password, true)
}

func (s *UserService) login(ctx context.Context, email, password string, adminOnly bool) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.Errorf(domain.KindConflict, "No user registered with this email: %s", email)
	}
	if err != nil {
		return "", nil, err
	}

	if adminOnly && user.Role != domain.RoleAdmin {
		return "", nil, domain.Errorf(domain.KindConflict, "this is not admin email: %s", email)
	}

	ok, err := s.hasher.Compare(ctx, user.PasswordHash, password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.NewError(domain.KindAuthInvalid, "Invalid password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := domain.AuthClaims{
		UserID:   user.ID,
		Email:    user.Email,
		UserName: user.UserName,
		PhoneNo:  user.PhoneNo,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// VerifyEmail marks the account verified when code matches the pending one.
func (s *UserService) VerifyEmail(ctx context.Context, userName, code string) error {
	invalid := domain.NewError(domain.KindValidation, "Invalid verification code")
	if userName == "" || code == "" {
		return invalid
	}

	user, err := s.repo.FindByUserName(ctx, userName)
	if errors.Is(err, domain.ErrNotFound) {
		return invalid
	}
	if err != nil {
		return err
	}

	pending, err := s.codes.Get(ctx, userName)
	if err != nil {
		return err
	}
	if pending == "" || pending != code {
		return invalid
	}
	if user.IsEmailVerified {
		return domain.NewError(domain.KindValidation, "Email already verified")
	}

	user.IsEmailVerified = true
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Int("user_id", user.ID).Msg("email verified")
	return nil
}

func (s *UserService) UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Errorf(domain.KindConflict, "No user registered with this email: %s", email)
	}
	if err != nil {
		return nil, err
	}

	ok, err := s.hasher.Compare(ctx, user.PasswordHash, oldPassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewError(domain.KindAuthInvalid, "Invalid old password")
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewError(domain.KindNotFound, "Invalid Id").WithStatus(http.StatusBadRequest)
	}
	return user, err
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewError(domain.KindNotFound, "Invalid Id").WithStatus(http.StatusBadRequest)
	}
	return err
}
