package appointment

import (
	"context"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/dto"
)

type ExportAppointments struct {
	repo domain.Repository
}

func NewExportAppointments(repo domain.Repository) *ExportAppointments {
	return &ExportAppointments{repo: repo}
}

// Execute devolve todos os agendamentos como linhas CSV, cabeçalho
// incluso, do mais recente para o mais antigo.
func (uc *ExportAppointments) Execute(ctx context.Context) ([][]string, error) {
	aps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{})
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(aps)+1)
	rows = append(rows, dto.ExportCSVHeader)

	for _, ap := range aps {
		rows = append(rows, dto.ExportCSVRow(ap))
	}

	return rows, nil
}
