package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pricingdesk.app/server/internal/auth"
	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/model"
)

var (
	ErrNoCodeSent   = errors.New("no verification code sent to this email, or it has expired")
	ErrInvalidCode  = errors.New("invalid verification code")
	ErrRoleMismatch = errors.New("role mismatch")
)

// TokenIssuer mints and checks access tokens.
type TokenIssuer interface {
	Issue(id model.Identity) (string, time.Time, error)
	Parse(token string) (model.Identity, error)
}

// Directory resolves display names for known users.
type Directory interface {
	NameFor(email string) (string, bool)
}

// Session is a verified login.
type Session struct {
	Identity  model.Identity
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	// SendCode stores a fresh code for email and mails it. Delivery is
	// best-effort; the returned role is the one the code is bound to.
	SendCode(ctx context.Context, email, role string) (string, model.Role, error)
	VerifyCode(ctx context.Context, email, code, role string) (*Session, error)
	Authenticate(ctx context.Context, token string) (model.Identity, error)
}

type authService struct {
	codes     auth.CodeStore
	tokens    TokenIssuer
	directory Directory
	composer  *email.Composer
	outbox    email.Outbox
	codeTTL   time.Duration
}

func NewAuthService(
	codes auth.CodeStore,
	tokens TokenIssuer,
	directory Directory,
	composer *email.Composer,
	outbox email.Outbox,
	codeTTL time.Duration,
) AuthService {
	if codeTTL <= 0 {
		codeTTL = auth.DefaultCodeTTL
	}
	return &authService{
		codes:     codes,
		tokens:    tokens,
		directory: directory,
		composer:  composer,
		outbox:    outbox,
		codeTTL:   codeTTL,
	}
}

func (s *authService) SendCode(ctx context.Context, addr, role string) (string, model.Role, error) {
	addr = auth.NormalizeEmail(addr)
	r := model.ParseRole(strings.ToUpper(strings.TrimSpace(role)))

	code, err := auth.GenerateCode()
	if err != nil {
		return "", "", fmt.Errorf("generating verification code: %w", err)
	}
	if err := s.codes.Put(ctx, addr, auth.PendingCode{Code: code, Role: r}, s.codeTTL); err != nil {
		return "", "", fmt.Errorf("storing verification code: %w", err)
	}

	msg, err := s.composer.VerificationCode(addr, code, s.codeTTL)
	if err == nil {
		err = s.outbox.Enqueue(ctx, msg)
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to queue verification email",
			"error", err,
			"email", addr,
		)
	}

	return addr, r, nil
}

func (s *authService) VerifyCode(ctx context.Context, addr, code, role string) (*Session, error) {
	addr = auth.NormalizeEmail(addr)

	pending, err := s.codes.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, auth.ErrCodeNotFound) {
			return nil, ErrNoCodeSent
		}
		return nil, fmt.Errorf("loading verification code: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(code)), []byte(pending.Code)) != 1 {
		return nil, ErrInvalidCode
	}
	if model.Role(strings.ToUpper(strings.TrimSpace(role))) != pending.Role {
		return nil, ErrRoleMismatch
	}

	if err := s.codes.Delete(ctx, addr); err != nil {
		return nil, fmt.Errorf("consuming verification code: %w", err)
	}

	identity := model.Identity{Email: addr, Name: s.displayName(addr), Role: pending.Role}
	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	slog.InfoContext(ctx, "user signed in", "email", addr, "role", identity.Role)
	return &Session{Identity: identity, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) Authenticate(_ context.Context, token string) (model.Identity, error) {
	return s.tokens.Parse(token)
}

func (s *authService) displayName(addr string) string {
	if s.directory != nil {
		if name, ok := s.directory.NameFor(addr); ok {
			return name
		}
	}
	local, _, _ := strings.Cut(addr, "@")
	return local
}
