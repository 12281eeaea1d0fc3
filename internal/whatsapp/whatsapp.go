package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/GlobalTechServices01/shield-scheduler/internal/timezone"
)

const countryCode = "55"

// ConfirmationData carrega os campos que entram na mensagem de
// confirmação enviada ao cliente.
type ConfirmationData struct {
	CustomerName string
	Service      string
	Date         string // 2006-01-02
	Time         string // 15:04
	Brand        string
}

// NormalizePhone remove tudo que não for dígito e prefixa o código do
// país quando ausente (assume Brasil +55).
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if strings.HasPrefix(digits, countryCode) {
		return digits
	}
	return countryCode + digits
}

// Link monta o deep link do WhatsApp. Nenhuma chamada de rede acontece
// aqui: o link só pré-preenche a conversa quando aberto pelo cliente.
func Link(phone, message string) string {
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		NormalizePhone(phone),
		url.QueryEscape(message),
	)
}

// FormatConfirmationMessage compõe a mensagem de confirmação de
// agendamento em pt-BR.
func FormatConfirmationMessage(data ConfirmationData) string {
	brandText := ""
	if data.Brand != "" {
		brandText = " para " + data.Brand
	}

	return fmt.Sprintf(`🔧 *CONFIRMAÇÃO DE AGENDAMENTO* 🔧

Olá %s!

Seu agendamento foi confirmado com sucesso:

📅 *Data:* %s
⏰ *Horário:* %s
🛠️ *Serviço:* %s%s

Em caso de dúvidas ou necessidade de reagendamento, entre em contato conosco.

Obrigado pela preferência! 📱💙`,
		data.CustomerName,
		timezone.FormatDateBR(data.Date),
		data.Time,
		data.Service,
		brandText,
	)
}

// ConfirmationLink é a composição usada pelo fluxo de reserva.
func ConfirmationLink(phone string, data ConfirmationData) string {
	return Link(phone, FormatConfirmationMessage(data))
}
