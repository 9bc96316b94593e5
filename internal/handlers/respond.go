package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
)

// writeError traduz erros de negócio para o envelope HTTP. Qualquer
// erro não mapeado vira 500 genérico; o detalhe fica só no log.
func writeError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.WriteValidation(c, ve)
		return
	}

	switch {
	case httperr.IsBusiness(err, "patient_not_found"):
		httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
	case httperr.IsBusiness(err, "user_not_found"):
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
	case httperr.IsBusiness(err, "duplicate_patient"):
		httperr.BadRequest(c, "duplicate_patient", "Já existe um paciente cadastrado com este CPF ou email.")
	case httperr.IsBusiness(err, "email_already_registered"):
		httperr.BadRequest(c, "email_already_registered", "Email já cadastrado.")
	case httperr.IsBusiness(err, "self_modification_denied"):
		httperr.BadRequest(c, "self_modification_denied", "Não é possível alterar seu próprio usuário.")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected handler error")
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
	}
}
