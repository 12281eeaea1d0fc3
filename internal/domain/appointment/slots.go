package appointment

import "time"

const DateLayout = "2006-01-02"

// AvailableTimes é o conjunto fixo de horários agendáveis. O par
// (data, horário) é a chave de contenção de disponibilidade.
var AvailableTimes = []string{
	"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00",
}

// DeviceBrands é o catálogo de marcas exibido no formulário público.
// A marca é extensível: "Outro" cobre qualquer valor fora da lista.
var DeviceBrands = []string{
	"Apple", "Samsung", "Motorola", "Xiaomi", "LG", "Huawei", "Outro",
}

func IsBookableTime(hm string) bool {
	for _, t := range AvailableTimes {
		if t == hm {
			return true
		}
	}
	return false
}

func IsValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
