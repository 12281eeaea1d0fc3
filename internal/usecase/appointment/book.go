package appointment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/GlobalTechServices01/shield-scheduler/internal/audit"
	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
	"github.com/GlobalTechServices01/shield-scheduler/internal/timezone"
	"github.com/GlobalTechServices01/shield-scheduler/internal/validators"
	"github.com/GlobalTechServices01/shield-scheduler/internal/whatsapp"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookAppointmentInput struct {
	Name  string
	Phone string
	Email string

	AppointmentDate string
	AppointmentTime string

	DeviceBrand string
	DeviceModel string

	ServiceType     string
	ServiceLocation string
	Address         string
}

type BookAppointmentResult struct {
	Appointment  *models.Appointment
	WhatsAppLink string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookAppointmentResult, error) {

	// --------------------------------------------------
	// Validação de domínio (enums, slot, endereço/local)
	// --------------------------------------------------
	if err := validators.ValidateBooking(validators.BookingInput{
		Name:            in.Name,
		Phone:           in.Phone,
		Email:           in.Email,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		DeviceBrand:     in.DeviceBrand,
		DeviceModel:     in.DeviceModel,
		ServiceType:     in.ServiceType,
		ServiceLocation: in.ServiceLocation,
		Address:         in.Address,
	}); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Criação — status sempre forçado para confirmado,
	// checagem de slot e insert na mesma transação
	// --------------------------------------------------
	ap := &models.Appointment{
		Name:            strings.TrimSpace(in.Name),
		Phone:           strings.TrimSpace(in.Phone),
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		DeviceBrand:     in.DeviceBrand,
		DeviceModel:     in.DeviceModel,
		ServiceType:     in.ServiceType,
		ServiceLocation: in.ServiceLocation,
		Address:         strings.TrimSpace(in.Address),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]string{
					"appointmentDate": ap.AppointmentDate,
					"appointmentTime": ap.AppointmentTime,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// Link de confirmação — melhor esforço, nunca desfaz
	// a reserva já persistida
	// --------------------------------------------------
	link := whatsapp.ConfirmationLink(ap.Phone, whatsapp.ConfirmationData{
		CustomerName: ap.Name,
		Service:      domain.ServiceLabel(ap.ServiceType),
		Date:         ap.AppointmentDate,
		Time:         ap.AppointmentTime,
		Brand:        ap.DeviceBrand,
	})

	if err := uc.repo.MarkWhatsAppSent(ctx, ap.ID); err != nil {
		slog.Error("failed to mark whatsapp sent", "appointment_id", ap.ID, "err", err)
	} else {
		now := timezone.Now()
		ap.WhatsappSent = &now
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &BookAppointmentResult{
		Appointment:  ap,
		WhatsAppLink: link,
	}, nil
}
