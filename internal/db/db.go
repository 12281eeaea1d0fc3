package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/config"
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Appointment{},
		&models.Session{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice parcial único: no máximo um agendamento confirmado por
	// (data, horário). É o backstop da corrida check-then-insert.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_confirmed_slot
        ON appointments (appointment_date, appointment_time)
        WHERE status = 'confirmado'
    `)

	return db
}
