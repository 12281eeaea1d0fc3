package dto

import (
	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
)

// ExportCSVHeader é a primeira linha do arquivo agendamentos.csv.
var ExportCSVHeader = []string{
	"Nome", "Telefone", "Email", "Data", "Horário",
	"Marca", "Modelo", "Serviço", "Status", "Criado em",
}

func ExportCSVRow(ap models.Appointment) []string {
	return []string{
		ap.Name,
		ap.Phone,
		ap.Email,
		ap.AppointmentDate,
		ap.AppointmentTime,
		ap.DeviceBrand,
		ap.DeviceModel,
		ap.ServiceType,
		ap.Status,
		ap.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
