package account

import (
	"strings"

	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/validators"
)

type Input struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (in *Input) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = string(models.RoleCollaborator)
	}
}

func (in *Input) validate(passwordRequired bool) error {
	var fields []httperr.FieldError

	if in.Name == "" {
		fields = append(fields, httperr.FieldError{Field: "name", Message: "Campo obrigatório."})
	}
	if in.Email == "" {
		fields = append(fields, httperr.FieldError{Field: "email", Message: "Campo obrigatório."})
	} else if !validators.IsEmailValid(in.Email) {
		fields = append(fields, httperr.FieldError{Field: "email", Message: "Email inválido."})
	}

	if passwordRequired && in.Password == "" {
		fields = append(fields, httperr.FieldError{Field: "password", Message: "Campo obrigatório."})
	}
	if in.Password != "" && len(in.Password) < 6 {
		fields = append(fields, httperr.FieldError{Field: "password", Message: "Senha deve ter pelo menos 6 caracteres."})
	}

	if !models.Role(in.Role).IsValid() {
		fields = append(fields, httperr.FieldError{Field: "role", Message: "Valor inválido."})
	}

	if len(fields) > 0 {
		return httperr.ValidationError{Fields: fields}
	}
	return nil
}
