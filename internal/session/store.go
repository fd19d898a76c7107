// Package session stores refresh-token sessions. The memory implementation
// is the default; the Redis implementation is selected when redis addresses
// are configured.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	Email        string    `json:"email"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, refreshToken string) (Session, error)
	Delete(ctx context.Context, refreshToken string) error
}
