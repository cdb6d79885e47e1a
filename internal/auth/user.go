// Package auth holds back-office users and their bearer sessions.
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// Credentials is the body of register and login.
// swagger:model Credentials
type Credentials struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=80" example:"admin"`
	Password string `json:"password" validate:"required,min=6"                example:"secret123"`
}

func (c Credentials) Validate() validate.Errors {
	return validate.Struct(c)
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

// Session is an opaque token bound to a user.
type Session struct {
	Token     string
	Kind      Kind
	Username  string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

// Tokens is what login and refresh hand back to the caller.
// swagger:model Tokens
type Tokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}
