package session

import (
	"context"
	"errors"
	"time"
)

const (
	// CookieName é o cookie que carrega o token opaco de sessão do admin.
	CookieName = "admin_session"

	// DefaultTTL limita a vida de uma sessão entre login e expiração.
	DefaultTTL = 24 * time.Hour
)

// ErrNotFound cobre token inexistente e token expirado.
var ErrNotFound = errors.New("session not found")

// Store guarda o vínculo token → adminID no lado do servidor. O token é
// opaco: invalidar a sessão é destruir a entrada, nunca depende do cliente.
type Store interface {
	Create(ctx context.Context, adminID uint) (token string, err error)
	Get(ctx context.Context, token string) (adminID uint, err error)
	Destroy(ctx context.Context, token string) error
}
