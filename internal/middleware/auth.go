package middleware

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	"github.com/GlobalTechServices01/shield-scheduler/internal/session"
)

const (
	ContextAdminID      = "adminID"
	ContextSessionToken = "sessionToken"
)

// AdminAuth resolve o cookie de sessão para um adminID antes de qualquer
// acesso a dados. Sem sessão válida a requisição morre em 401.
func AdminAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(401, gin.H{
				"error_code": "not_authenticated",
				"message":    "Acesso negado. Faça login como administrador.",
			})
			return
		}

		adminID, err := store.Get(c.Request.Context(), token)
		if errors.Is(err, session.ErrNotFound) {
			c.AbortWithStatusJSON(401, gin.H{
				"error_code": "invalid_session",
				"message":    "Sessão inválida ou expirada.",
			})
			return
		}
		if err != nil {
			slog.Error("session lookup failed", "err", err)
			c.Abort()
			httperr.Internal(c, "session_store_error", "Erro interno do servidor.")
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Set(ContextSessionToken, token)

		c.Next()
	}
}
