package appointment

import (
	"context"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

// Execute remove o agendamento. Um segundo delete do mesmo id retorna
// not found, nunca sucesso.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	return uc.repo.DeleteAppointment(ctx, id)
}
