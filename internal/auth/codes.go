package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pricingdesk.app/server/internal/model"
)

const (
	CodeLength     = 6
	DefaultCodeTTL = 10 * time.Minute

	codeKeyPrefix = "pricingdesk:verification:"
)

var ErrCodeNotFound = errors.New("verification code not found or expired")

// PendingCode is what a caller must echo back to sign in.
type PendingCode struct {
	Code string     `json:"code"`
	Role model.Role `json:"role"`
}

// CodeStore holds at most one pending code per email. Entries expire on
// their own; Delete is for consumption after a successful verification.
type CodeStore interface {
	Put(ctx context.Context, email string, code PendingCode, ttl time.Duration) error
	Get(ctx context.Context, email string) (PendingCode, error)
	Delete(ctx context.Context, email string) error
}

type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

func (s *RedisCodeStore) Put(ctx context.Context, email string, code PendingCode, ttl time.Duration) error {
	raw, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("encoding verification code: %w", err)
	}
	if err := s.client.Set(ctx, codeKey(email), raw, ttl).Err(); err != nil {
		return fmt.Errorf("storing verification code: %w", err)
	}
	return nil
}

func (s *RedisCodeStore) Get(ctx context.Context, email string) (PendingCode, error) {
	raw, err := s.client.Get(ctx, codeKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return PendingCode{}, ErrCodeNotFound
		}
		return PendingCode{}, fmt.Errorf("loading verification code: %w", err)
	}

	var code PendingCode
	if err := json.Unmarshal(raw, &code); err != nil {
		return PendingCode{}, fmt.Errorf("decoding verification code: %w", err)
	}
	return code, nil
}

func (s *RedisCodeStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, codeKey(email)).Err(); err != nil {
		return fmt.Errorf("deleting verification code: %w", err)
	}
	return nil
}

func codeKey(email string) string {
	return codeKeyPrefix + NormalizeEmail(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GenerateCode returns a uniformly random zero-padded numeric code.
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for range CodeLength {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n), nil
}
