package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
	StatusCompleted Status = "concluido"
)

// InitialStatus é o status forçado em toda criação, independente do que
// o cliente enviar no payload.
func InitialStatus() Status {
	return StatusConfirmed
}

// IsValidStatus aceita qualquer membro do conjunto. O status é um conjunto
// plano: qualquer status pode suceder qualquer outro via update do admin.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Service enums
// ===============================

type ServiceType string

const (
	ServiceBasic   ServiceType = "basica"
	ServicePremium ServiceType = "premium"
)

func IsValidServiceType(s string) bool {
	switch ServiceType(s) {
	case ServiceBasic, ServicePremium:
		return true
	}
	return false
}

// ServiceLabel é o nome do serviço como aparece na mensagem de
// confirmação enviada ao cliente.
func ServiceLabel(s string) string {
	switch ServiceType(s) {
	case ServiceBasic:
		return "Película Líquida Básica"
	case ServicePremium:
		return "Película Líquida Premium"
	}
	return s
}

type ServiceLocation string

const (
	LocationStore ServiceLocation = "loja"
	LocationHome  ServiceLocation = "domicilio"
)

func IsValidServiceLocation(s string) bool {
	switch ServiceLocation(s) {
	case LocationStore, LocationHome:
		return true
	}
	return false
}
