package appointment

import (
	"context"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute responde se o par (data, horário) está livre: livre é não haver
// nenhum agendamento confirmado no slot. Parâmetros ausentes ou
// malformados são erro de input do cliente, nunca "indisponível".
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	date string,
	hm string,
) (bool, error) {

	if date == "" || hm == "" {
		return false, httperr.ErrBusiness("missing_params")
	}

	if !domain.IsValidDate(date) {
		return false, httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsBookableTime(hm) {
		return false, httperr.ErrBusiness("invalid_time")
	}

	count, err := uc.repo.CountConfirmedAt(ctx, date, hm)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}
