package patient

import (
	"context"
	"strings"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/patient"
	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/validators"
)

type Update struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdate(repo domain.Repository, sink audit.Sink) *Update {
	return &Update{repo: repo, audit: sink}
}

func (uc *Update) Execute(ctx context.Context, id uint, in Input, actingUserID uint) (*models.Patient, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Status omitido preserva o valor gravado, não cai para o default.
	if strings.TrimSpace(in.Status) == "" {
		in.Status = string(p.Status)
	}

	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	// Duplicidade só é rechecada quando algum campo único mudou; a
	// comparação de cpf ignora pontuação.
	if uniqueFieldsChanged(p, &in) {
		dup, err := uc.repo.HasDuplicate(ctx, in.Email, in.CPF, in.RG, p.ID)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, httperr.ErrBusiness("duplicate_patient")
		}
	}

	in.apply(p)
	p.UpdatedBy = actingUserID

	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "patient_updated",
		Entity:   "patient",
		EntityID: &p.ID,
	})

	return p, nil
}

func uniqueFieldsChanged(p *models.Patient, in *Input) bool {
	if p.Email != in.Email {
		return true
	}
	if validators.DigitsOnly(p.CPF) != validators.DigitsOnly(in.CPF) {
		return true
	}

	oldRG := ""
	if p.RG != nil {
		oldRG = *p.RG
	}
	newRG := ""
	if in.RG != nil {
		newRG = *in.RG
	}
	return oldRG != newRG
}
