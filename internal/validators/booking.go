package validators

import (
	"strings"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
)

// BookingInput é o payload de reserva já deserializado. Os campos
// obrigatórios simples ficam nas binding tags do handler; aqui entram as
// regras de domínio e a regra cruzada endereço/local.
type BookingInput struct {
	Name            string
	Phone           string
	Email           string
	AppointmentDate string
	AppointmentTime string
	DeviceBrand     string
	DeviceModel     string
	ServiceType     string
	ServiceLocation string
	Address         string
}

// ValidateBooking rejeita o input antes de qualquer acesso ao banco.
// Retorna BusinessError com código estável por campo.
func ValidateBooking(in BookingInput) error {
	if !domain.IsValidDate(in.AppointmentDate) {
		return httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsBookableTime(in.AppointmentTime) {
		return httperr.ErrBusiness("invalid_time")
	}

	if !domain.IsValidServiceType(in.ServiceType) {
		return httperr.ErrBusiness("invalid_service_type")
	}

	if !domain.IsValidServiceLocation(in.ServiceLocation) {
		return httperr.ErrBusiness("invalid_service_location")
	}

	// Endereço é obrigatório exatamente quando o atendimento é em domicílio.
	if domain.ServiceLocation(in.ServiceLocation) == domain.LocationHome &&
		strings.TrimSpace(in.Address) == "" {
		return httperr.ErrBusiness("address_required")
	}

	return nil
}
