package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GlobalTechServices01/shield-scheduler/internal/httperr"
	ucAppointment "github.com/GlobalTechServices01/shield-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	bookUC  *ucAppointment.BookAppointment
	checkUC *ucAppointment.CheckAvailability
}

func NewPublicHandler(
	bookUC *ucAppointment.BookAppointment,
	checkUC *ucAppointment.CheckAvailability,
) *PublicHandler {
	return &PublicHandler{
		bookUC:  bookUC,
		checkUC: checkUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`

	AppointmentDate string `json:"appointmentDate" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`

	DeviceBrand string `json:"deviceBrand" binding:"required"`
	DeviceModel string `json:"deviceModel" binding:"required"`

	ServiceType     string `json:"serviceType" binding:"required"`
	ServiceLocation string `json:"serviceLocation" binding:"required"`
	Address         string `json:"address"`

	// Status enviado pelo cliente é ignorado: criação sempre confirma.
	Status string `json:"status"`
}

// ======================================================
// BOOKING
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Dados inválidos",
			"errors":  err.Error(),
		})
		return
	}

	result, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		DeviceBrand:     req.DeviceBrand,
		DeviceModel:     req.DeviceModel,
		ServiceType:     req.ServiceType,
		ServiceLocation: req.ServiceLocation,
		Address:         req.Address,
	})

	if err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			c.JSON(http.StatusConflict, gin.H{
				"available": false,
				"message":   "Este horário acabou de ser reservado. Escolha outro horário.",
			})
			return
		}

		var be httperr.BusinessError
		if ok := errorAsBusiness(err, &be); ok {
			httperr.BadRequest(c, be.Code, validationMessage(be.Code))
			return
		}

		slog.Error("failed to create appointment", "err", err)
		httperr.Internal(c, "failed_to_create_appointment", "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointment":  result.Appointment,
		"whatsappLink": result.WhatsAppLink,
		"message":      "Agendamento criado com sucesso! Você receberá uma confirmação via WhatsApp em breve.",
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	hm := c.Query("time")

	available, err := h.checkUC.Execute(c.Request.Context(), date, hm)
	if err != nil {
		var be httperr.BusinessError
		if ok := errorAsBusiness(err, &be); ok {
			httperr.BadRequest(c, be.Code, validationMessage(be.Code))
			return
		}

		slog.Error("availability check failed", "err", err)
		httperr.Internal(c, "availability_failed", "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}
