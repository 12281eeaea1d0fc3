package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
	"github.com/GlobalTechServices01/shield-scheduler/internal/timezone"
)

// GormStore guarda sessões na tabela sessions quando não há Redis
// configurado. Entradas expiradas são tratadas como inexistentes e
// removidas na leitura.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, adminID uint) (string, error) {
	sess := models.Session{
		Token:     uuid.NewString(),
		AdminID:   adminID,
		ExpiresAt: timezone.Now().Add(DefaultTTL),
	}

	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return "", err
	}

	return sess.Token, nil
}

func (s *GormStore) Get(ctx context.Context, token string) (uint, error) {
	var sess models.Session
	err := s.db.WithContext(ctx).
		Where("token = ?", token).
		First(&sess).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	if sess.ExpiresAt.Before(timezone.Now()) {
		s.db.WithContext(ctx).Delete(&models.Session{}, "token = ?", token)
		return 0, ErrNotFound
	}

	return sess.AdminID, nil
}

func (s *GormStore) Destroy(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).
		Delete(&models.Session{}, "token = ?", token).Error
}

// Compile-time check
var _ Store = (*GormStore)(nil)
