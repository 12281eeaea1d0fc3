package appointment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/audit"
	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

// ------------------------------------------------------
// Fake repository
// ------------------------------------------------------

type fakeRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
	markErr      error
	lastColumns  map[string]any
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (f *fakeRepo) add(ap *models.Appointment) {
	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
}

func (f *fakeRepo) CreateIfSlotFree(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.AppointmentDate == ap.AppointmentDate &&
			existing.AppointmentTime == ap.AppointmentTime &&
			existing.Status == string(domain.StatusConfirmed) {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	f.add(ap)
	return nil
}

func (f *fakeRepo) CountConfirmedAt(_ context.Context, date, hm string) (int64, error) {
	var count int64
	for _, ap := range f.appointments {
		if ap.AppointmentDate == date && ap.AppointmentTime == hm &&
			ap.Status == string(domain.StatusConfirmed) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, _ domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, id uint, columns map[string]any) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	f.lastColumns = columns
	if s, ok := columns["status"].(string); ok {
		ap.Status = s
	}
	return ap, nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) MarkWhatsAppSent(_ context.Context, id uint) error {
	return f.markErr
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// Helpers
// ------------------------------------------------------

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("falha ao obter sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("falha ao migrar: %v", err)
	}

	return audit.NewDispatcher(audit.New(db))
}

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		Name:            "Maria Silva",
		Phone:           "(11) 99999-8888",
		Email:           "Maria@Example.com",
		AppointmentDate: "2025-06-10",
		AppointmentTime: "09:00",
		DeviceBrand:     "Samsung",
		DeviceModel:     "Galaxy S24",
		ServiceType:     "basica",
		ServiceLocation: "loja",
	}
}

// ------------------------------------------------------
// Tests
// ------------------------------------------------------

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("reserva válida persiste confirmada e gera link", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewBookAppointment(repo, newTestDispatcher(t))

		result, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}

		ap := result.Appointment
		if ap.Status != "confirmado" {
			t.Errorf("status deveria ser confirmado, obteve %s", ap.Status)
		}

		if ap.Email != "maria@example.com" {
			t.Errorf("email deveria ser normalizado, obteve %s", ap.Email)
		}

		if !strings.HasPrefix(result.WhatsAppLink, "https://wa.me/5511999998888?text=") {
			t.Errorf("link inesperado: %s", result.WhatsAppLink)
		}

		if ap.WhatsappSent == nil {
			t.Error("whatsappSent deveria ter sido carimbado")
		}
	})

	t.Run("slot ocupado devolve conflito sem persistir", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewBookAppointment(repo, newTestDispatcher(t))

		if _, err := uc.Execute(ctx, validInput()); err != nil {
			t.Fatalf("primeira reserva falhou: %v", err)
		}

		in := validInput()
		in.Name = "João Souza"
		in.Phone = "11988887777"

		_, err := uc.Execute(ctx, in)
		if !httperr.IsBusiness(err, "slot_taken") {
			t.Fatalf("esperava slot_taken, obteve %v", err)
		}

		if len(repo.appointments) != 1 {
			t.Errorf("conflito não deveria persistir nada, há %d registros", len(repo.appointments))
		}
	})

	t.Run("slot liberado por cancelamento volta a aceitar reserva", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewBookAppointment(repo, newTestDispatcher(t))

		first, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("primeira reserva falhou: %v", err)
		}

		repo.appointments[first.Appointment.ID].Status = "cancelado"

		if _, err := uc.Execute(ctx, validInput()); err != nil {
			t.Errorf("slot cancelado deveria estar livre, obteve %v", err)
		}
	})

	t.Run("domicílio sem endereço é rejeitado antes do banco", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewBookAppointment(repo, newTestDispatcher(t))

		in := validInput()
		in.ServiceLocation = "domicilio"
		in.Address = ""

		_, err := uc.Execute(ctx, in)
		if !httperr.IsBusiness(err, "address_required") {
			t.Fatalf("esperava address_required, obteve %v", err)
		}

		if len(repo.appointments) != 0 {
			t.Error("validação deveria impedir qualquer persistência")
		}
	})

	t.Run("falha ao carimbar whatsapp não desfaz a reserva", func(t *testing.T) {
		repo := newFakeRepo()
		repo.markErr = errors.New("store indisponível")
		uc := NewBookAppointment(repo, newTestDispatcher(t))

		result, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("reserva deveria suceder mesmo sem carimbo, obteve %v", err)
		}

		if result.WhatsAppLink == "" {
			t.Error("link deveria ser gerado mesmo com falha no carimbo")
		}

		if result.Appointment.WhatsappSent != nil {
			t.Error("carimbo não deveria constar após falha")
		}

		if len(repo.appointments) != 1 {
			t.Error("reserva deveria permanecer persistida")
		}
	})
}
