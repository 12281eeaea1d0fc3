package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/admin"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

func (r *AdminGormRepository) CreateAdmin(
	ctx context.Context,
	user *models.AdminUser,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AdminGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.AdminUser, error) {

	var user models.AdminUser
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.AdminUser, error) {

	var user models.AdminUser
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*AdminGormRepository)(nil)
