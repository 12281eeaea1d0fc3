package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/audit"
	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/admin"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
	"github.com/GlobalTechServices01/shield-scheduler/internal/session"
)

type AuthHandler struct {
	repo  domain.Repository
	store session.Store
	audit *audit.Dispatcher
}

func NewAuthHandler(
	repo domain.Repository,
	store session.Store,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

func adminProfile(user *models.AdminUser) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Dados inválidos",
			"errors":  err.Error(),
		})
		return
	}

	user, err := h.repo.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		// Usuário inexistente e senha errada respondem igual.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
			return
		}

		slog.Error("admin lookup failed", "err", err)
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	token, err := h.store.Create(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("failed to create session", "err", err)
		httperr.Internal(c, "session_error", "Erro interno do servidor.")
		return
	}

	c.SetCookie(
		session.CookieName,
		token,
		int(session.DefaultTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	h.audit.Dispatch(audit.Event{
		AdminID: &user.ID,
		Action:  "admin_login",
		Entity:  "admin_user",
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login realizado com sucesso",
		"admin":   adminProfile(user),
	})
}

// Logout sempre responde 200: para o cliente a sessão acabou, falha na
// destruição só interessa ao servidor.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := h.store.Destroy(c.Request.Context(), token); err != nil {
			slog.Error("session destroy failed", "err", err)
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout realizado com sucesso",
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		httperr.Unauthorized(c, "not_authenticated", "Não autenticado")
		return
	}

	adminID, err := h.store.Get(c.Request.Context(), token)
	if errors.Is(err, session.ErrNotFound) {
		httperr.Unauthorized(c, "invalid_session", "Não autenticado")
		return
	}
	if err != nil {
		slog.Error("session lookup failed", "err", err)
		httperr.Internal(c, "session_store_error", "Erro interno do servidor.")
		return
	}

	user, err := h.repo.FindByID(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// adminId órfão: a sessão é invalidada aqui mesmo.
			if derr := h.store.Destroy(c.Request.Context(), token); derr != nil {
				slog.Error("session destroy failed", "err", derr)
			}
			httperr.Unauthorized(c, "admin_not_found", "Usuário admin não encontrado")
			return
		}

		slog.Error("admin lookup failed", "err", err)
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": adminProfile(user)})
}

// CreateAdmin existe para o setup inicial do painel.
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Username e password são obrigatórios",
			"errors":  err.Error(),
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(req.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		slog.Error("failed to hash password", "err", err)
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário admin")
		return
	}

	user := models.AdminUser{
		Username:     req.Username,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := h.repo.CreateAdmin(c.Request.Context(), &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "username_taken", "Username já existe")
			return
		}

		slog.Error("failed to create admin", "err", err)
		httperr.Internal(c, "failed_to_create_admin", "Erro ao criar usuário admin")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Usuário admin criado com sucesso",
		"admin":   adminProfile(&user),
	})
}
