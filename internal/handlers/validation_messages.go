package handlers

import (
	"errors"

	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
)

// Mensagens amigáveis por código de validação. Código desconhecido cai
// na genérica.
var validationMessages = map[string]string{
	"missing_params":           "Data e horário são obrigatórios.",
	"invalid_date":             "Data inválida.",
	"invalid_time":             "Horário inválido.",
	"invalid_status":           "Status inválido.",
	"invalid_service_type":     "Tipo de serviço inválido.",
	"invalid_service_location": "Local de atendimento inválido.",
	"address_required":         "Endereço é obrigatório para atendimento em domicílio.",
}

func validationMessage(code string) string {
	if msg, ok := validationMessages[code]; ok {
		return msg
	}
	return "Dados inválidos"
}

func errorAsBusiness(err error, be *httperr.BusinessError) bool {
	return errors.As(err, be)
}
