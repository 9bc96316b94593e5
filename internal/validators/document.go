package validators

import (
	"strings"
	"time"
)

// DigitsOnly remove tudo que não for dígito (pontuação de CPF/CEP).
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCPFValid exige exatamente 11 dígitos após remover a pontuação.
// O valor armazenado pode manter a pontuação original.
func IsCPFValid(cpf string) bool {
	return len(DigitsOnly(cpf)) == 11
}

// IsCEPValid exige exatamente 8 dígitos após remover a pontuação.
func IsCEPValid(cep string) bool {
	return len(DigitsOnly(cep)) == 8
}

// IsDateValid aceita datas no formato AAAA-MM-DD.
func IsDateValid(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
