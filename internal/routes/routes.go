package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/audit"
	"github.com/GlobalTechServices01/shield-scheduler/internal/handlers"
	infraRepo "github.com/GlobalTechServices01/shield-scheduler/internal/infra/repository"
	"github.com/GlobalTechServices01/shield-scheduler/internal/middleware"
	"github.com/GlobalTechServices01/shield-scheduler/internal/session"
	ucAppointment "github.com/GlobalTechServices01/shield-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store session.Store) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	adminRepo := infraRepo.NewAdminGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher)
	checkUC := ucAppointment.NewCheckAvailability(appointmentRepo)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo)
	exportUC := ucAppointment.NewExportAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(bookUC, checkUC)
	authHandler := handlers.NewAuthHandler(adminRepo, store, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		listUC,
		updateUC,
		deleteUC,
		exportUC,
		auditDispatcher,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA — reserva e disponibilidade
		// ------------------------------
		api.POST("/appointments", publicHandler.CreateAppointment)
		api.GET("/appointments/check-availability", publicHandler.CheckAvailability)

		// ------------------------------
		// AUTH — sessão de admin
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)
		api.POST("/admin/logout", authHandler.Logout)
		api.GET("/admin/me", authHandler.Me)
		api.POST("/admin/create", authHandler.CreateAdmin)

		// ------------------------------
		// PRIVADA — painel admin
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AdminAuth(store))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/export", appointmentHandler.Export)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
