package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/audit"
	domain "github.com/GlobalTechServices01/shield-scheduler/internal/domain/appointment"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	"github.com/GlobalTechServices01/shield-scheduler/internal/httpresp"
	"github.com/GlobalTechServices01/shield-scheduler/internal/middleware"
	ucAppointment "github.com/GlobalTechServices01/shield-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC   *ucAppointment.ListAppointments
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	exportUC *ucAppointment.ExportAppointments
	audit    *audit.Dispatcher
}

func NewAppointmentHandler(
	listUC *ucAppointment.ListAppointments,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	exportUC *ucAppointment.ExportAppointments,
	auditDispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		exportUC: exportUC,
		audit:    auditDispatcher,
	}
}

func adminIDFromContext(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextAdminID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func parseAppointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		Search: c.Query("search"),
		Brand:  c.Query("brand"),
		Date:   c.Query("date"),
		Status: c.Query("status"),
	})
	if err != nil {
		slog.Error("failed to list appointments", "err", err)
		httperr.Internal(c, "failed_to_list_appointments", "Erro interno do servidor.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Dados inválidos",
			"errors":  err.Error(),
		})
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, partial)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}

		if httperr.IsBusiness(err, "slot_taken") {
			httperr.Conflict(c, "slot_taken",
				"Este horário já possui um agendamento confirmado.")
			return
		}

		var be httperr.BusinessError
		if errorAsBusiness(err, &be) {
			httperr.BadRequest(c, be.Code, validationMessage(be.Code))
			return
		}

		slog.Error("failed to update appointment", "id", id, "err", err)
		httperr.Internal(c, "failed_to_update_appointment", "Erro interno do servidor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFromContext(c),
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: partial,
	})

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}

		slog.Error("failed to delete appointment", "id", id, "err", err)
		httperr.Internal(c, "failed_to_delete_appointment", "Erro interno do servidor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFromContext(c),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Agendamento excluído com sucesso",
	})
}

// ======================================================
// EXPORT (CSV)
// ======================================================

func (h *AppointmentHandler) Export(c *gin.Context) {
	rows, err := h.exportUC.Execute(c.Request.Context())
	if err != nil {
		slog.Error("failed to export appointments", "err", err)
		httperr.Internal(c, "failed_to_export_appointments", "Erro interno do servidor.")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="agendamentos.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(rows); err != nil {
		slog.Error("failed to write csv", "err", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID: adminIDFromContext(c),
		Action:  "appointments_exported",
		Entity:  "appointment",
	})
}
