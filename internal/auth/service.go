package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnauthorized covers absent, unknown, expired and wrong-kind tokens.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service struct {
	users      Repository
	sessions   SessionStore
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewService(users Repository, sessions SessionStore, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Register creates a user. The credentials must already be valid.
func (s *Service) Register(ctx context.Context, c Credentials) (*User, error) {
	if ve := c.Validate(); !ve.OK() {
		return nil, ve
	}
	hash, err := HashPassword(c.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Username:     c.Username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the password and issues a new access/refresh pair.
func (s *Service) Login(ctx context.Context, c Credentials) (Tokens, error) {
	u, err := s.users.GetByUsername(ctx, c.Username)
	if errors.Is(err, ErrNotFound) {
		return Tokens{}, ErrInvalidCredentials
	}
	if err != nil {
		return Tokens{}, err
	}
	if !CheckPassword(u.PasswordHash, c.Password) {
		return Tokens{}, ErrInvalidCredentials
	}
	return s.issue(ctx, u.Username)
}

// Authenticate returns the username owning a live access token.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	sess, err := s.lookup(ctx, token, Access)
	if err != nil {
		return "", err
	}
	return sess.Username, nil
}

// Refresh consumes a refresh token and issues a new pair. Only the caller
// that actually deletes the token gets the new pair.
func (s *Service) Refresh(ctx context.Context, token string) (Tokens, error) {
	sess, err := s.lookup(ctx, token, Refresh)
	if err != nil {
		return Tokens{}, err
	}
	consumed, err := s.sessions.Delete(ctx, token)
	if err != nil {
		return Tokens{}, err
	}
	if !consumed {
		return Tokens{}, ErrUnauthorized
	}
	return s.issue(ctx, sess.Username)
}

// Logout revokes every session of the user.
func (s *Service) Logout(ctx context.Context, username string) error {
	return s.sessions.DeleteByUsername(ctx, username)
}

func (s *Service) lookup(ctx context.Context, token string, kind Kind) (*Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Kind != kind {
		return nil, ErrUnauthorized
	}
	if sess.Expired(s.now()) {
		_, _ = s.sessions.Delete(ctx, token)
		return nil, ErrUnauthorized
	}
	return sess, nil
}

func (s *Service) issue(ctx context.Context, username string) (Tokens, error) {
	now := s.now()
	access := Session{Token: uuid.NewString(), Kind: Access, Username: username, ExpiresAt: now.Add(s.accessTTL)}
	refresh := Session{Token: uuid.NewString(), Kind: Refresh, Username: username, ExpiresAt: now.Add(s.refreshTTL)}
	for _, sess := range []Session{access, refresh} {
		if err := s.sessions.Save(ctx, sess); err != nil {
			return Tokens{}, fmt.Errorf("save %s session: %w", sess.Kind, err)
		}
	}
	return Tokens{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		TokenType:    "Bearer",
		ExpiresAt:    access.ExpiresAt,
	}, nil
}
