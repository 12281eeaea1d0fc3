package appointment

import (
	"context"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

type UpdateAppointment struct {
	repo domain.Repository
}

func NewUpdateAppointment(repo domain.Repository) *UpdateAppointment {
	return &UpdateAppointment{repo: repo}
}

// Execute aplica um update parcial. Os nomes externos (camelCase) são
// traduzidos para colunas pela tabela única em models; campos fora dela
// são ignorados. A disponibilidade do slot não é reavaliada de forma
// proativa; a colisão entre dois agendamentos confirmados é barrada
// pelo índice parcial e volta do repositório como slot_taken.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	partial map[string]any,
) (*models.Appointment, error) {

	columns := make(map[string]any, len(partial))

	for field, value := range partial {
		column, ok := models.AppointmentUpdatableColumns[field]
		if !ok {
			continue
		}

		s, isString := value.(string)

		switch column {
		case "status":
			if !isString || !domain.IsValidStatus(s) {
				return nil, httperr.ErrBusiness("invalid_status")
			}
		case "service_type":
			if !isString || !domain.IsValidServiceType(s) {
				return nil, httperr.ErrBusiness("invalid_service_type")
			}
		case "service_location":
			if !isString || !domain.IsValidServiceLocation(s) {
				return nil, httperr.ErrBusiness("invalid_service_location")
			}
		case "appointment_time":
			if !isString || !domain.IsBookableTime(s) {
				return nil, httperr.ErrBusiness("invalid_time")
			}
		case "appointment_date":
			if !isString || !domain.IsValidDate(s) {
				return nil, httperr.ErrBusiness("invalid_date")
			}
		}

		columns[column] = value
	}

	return uc.repo.UpdateAppointment(ctx, id, columns)
}
