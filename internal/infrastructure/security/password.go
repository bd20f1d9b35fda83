package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/careercharma/learnhub-api/internal/api/metrics"
)

// DefaultCost matches the cost used for every stored password.
const DefaultCost = 10

// Runner executes fn off the request goroutine.
type Runner interface {
	Do(ctx context.Context, fn func()) error
}

// BcryptHasher hashes and checks passwords on a bounded worker pool.
type BcryptHasher struct {
	runner Runner
	cost   int
}

func NewBcryptHasher(runner Runner, cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &BcryptHasher{runner: runner, cost: cost}
}

func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	start := time.Now()
	defer func() { metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds()) }()

	var (
		hash []byte
		err  error
	)
	if runErr := h.runner.Do(ctx, func() {
		hash, err = bcrypt.GenerateFromPassword([]byte(password), h.cost)
	}); runErr != nil {
		return "", runErr
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. A mismatch is not an error.
func (h *BcryptHasher) Compare(ctx context.Context, hash, password string) (bool, error) {
	start := time.Now()
	defer func() { metrics.PasswordHashDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds()) }()

	var err error
	if runErr := h.runner.Do(ctx, func() {
		err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	}); runErr != nil {
		return false, runErr
	}
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password: %w", err)
	}
}
