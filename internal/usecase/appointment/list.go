package appointment

import (
	"context"
	"strings"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	filter.Search = strings.TrimSpace(filter.Search)
	filter.Brand = strings.TrimSpace(filter.Brand)
	filter.Date = strings.TrimSpace(filter.Date)
	filter.Status = strings.TrimSpace(filter.Status)

	return uc.repo.ListAppointments(ctx, filter)
}
