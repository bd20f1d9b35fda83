package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCodeTTL = 10 * time.Minute

// CodeStore keeps pending e-mail verification codes.
// Key format: verify:<user_name>
type CodeStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCodeStore creates a CodeStore whose entries expire after ttl
// (defaultCodeTTL when zero).
func NewCodeStore(client *redis.Client, ttl time.Duration) *CodeStore {
	if ttl <= 0 {
		ttl = defaultCodeTTL
	}
	return &CodeStore{client: client, ttl: ttl}
}

// Save replaces any pending code for userName.
func (s *CodeStore) Save(ctx context.Context, userName, code string) error {
	if err := s.client.Set(ctx, s.key(userName), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("save verification code: %w", err)
	}
	return nil
}

// Get returns the pending code, or "" when none exists or it has expired.
func (s *CodeStore) Get(ctx context.Context, userName string) (string, error) {
	code, err := s.client.Get(ctx, s.key(userName)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get verification code: %w", err)
	}
	return code, nil
}

func (s *CodeStore) key(userName string) string {
	return "verify:" + userName
}
