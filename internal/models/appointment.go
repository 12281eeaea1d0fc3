package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`
	Email string `gorm:"size:255;not null" json:"email"`

	AppointmentDate string `gorm:"column:appointment_date;size:10;not null;index:idx_appointments_slot" json:"appointmentDate"`
	AppointmentTime string `gorm:"column:appointment_time;size:5;not null;index:idx_appointments_slot" json:"appointmentTime"`

	DeviceBrand string `gorm:"column:device_brand;size:100;not null" json:"deviceBrand"`
	DeviceModel string `gorm:"column:device_model;size:100;not null" json:"deviceModel"`

	ServiceType     string `gorm:"column:service_type;size:50;not null" json:"serviceType"`
	ServiceLocation string `gorm:"column:service_location;size:50;not null;default:'loja'" json:"serviceLocation"`
	Address         string `gorm:"size:255" json:"address"`

	Status string `gorm:"size:50;not null;default:'confirmado'" json:"status"`

	WhatsappSent *time.Time `gorm:"column:whatsapp_sent" json:"whatsappSent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentUpdatableColumns é a tabela única de tradução entre os nomes
// expostos na API (camelCase) e as colunas do banco (snake_case) para
// updates parciais. Campos fora desta lista são ignorados no update.
var AppointmentUpdatableColumns = map[string]string{
	"name":            "name",
	"phone":           "phone",
	"email":           "email",
	"appointmentDate": "appointment_date",
	"appointmentTime": "appointment_time",
	"deviceBrand":     "device_brand",
	"deviceModel":     "device_model",
	"serviceType":     "service_type",
	"serviceLocation": "service_location",
	"address":         "address",
	"status":          "status",
}
