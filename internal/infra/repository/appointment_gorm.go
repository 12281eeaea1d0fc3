package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
	"github.com/GlobalTechServices01/shield-scheduler/internal/timezone"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.Model(&models.Appointment{})

		// SQLite (testes) não aceita FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var count int64
		if err := q.
			Where(
				"appointment_date = ? AND appointment_time = ? AND status = ?",
				ap.AppointmentDate,
				ap.AppointmentTime,
				string(domain.StatusConfirmed),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	// Índice parcial único em (appointment_date, appointment_time) com
	// status confirmado é o backstop de corrida entre duas reservas.
	if httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

func (r *AppointmentGormRepository) CountConfirmedAt(
	ctx context.Context,
	date string,
	hm string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"appointment_date = ? AND appointment_time = ? AND status = ?",
			date,
			hm,
			string(domain.StatusConfirmed),
		).
		Count(&count).Error

	return count, err
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	if filter.Brand != "" {
		q = q.Where("device_brand = ?", filter.Brand)
	}

	if filter.Date != "" {
		q = q.Where("appointment_date = ?", filter.Date)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var aps []models.Appointment
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Mutate
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	id uint,
	columns map[string]any,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	if len(columns) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&ap).
			Updates(columns).Error; err != nil {
			// O índice parcial também vale para updates: mover um
			// confirmado para cima de outro confirmado é conflito de
			// slot, não erro interno.
			if httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, httperr.ErrBusiness("slot_taken")
			}
			return nil, err
		}
	}

	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *AppointmentGormRepository) MarkWhatsAppSent(
	ctx context.Context,
	id uint,
) error {

	now := timezone.Now()
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("whatsapp_sent", &now).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
