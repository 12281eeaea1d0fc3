package appointment

import (
	"context"

	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateIfSlotFree executa a checagem de conflito e o insert na mesma
	// transação, com lock; retorna ErrBusiness("slot_taken") se o par
	// (data, horário) já tiver um agendamento confirmado.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CountConfirmedAt(
		ctx context.Context,
		date string,
		hm string,
	) (int64, error)

	// -------- Appointment (read / mutate) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		id uint,
		columns map[string]any,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	MarkWhatsAppSent(
		ctx context.Context,
		id uint,
	) error
}
