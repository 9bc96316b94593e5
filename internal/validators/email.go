package validators

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailValid verifica o formato local@dominio. Não consulta DNS: a
// validação de registros precisa ser uma função pura e determinística.
func IsEmailValid(email string) bool {
	return emailRe.MatchString(email)
}
