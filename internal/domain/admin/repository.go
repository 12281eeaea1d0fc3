package admin

import (
	"context"

	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

type Repository interface {
	CreateAdmin(
		ctx context.Context,
		user *models.AdminUser,
	) error

	FindByUsername(
		ctx context.Context,
		username string,
	) (*models.AdminUser, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.AdminUser, error)
}
