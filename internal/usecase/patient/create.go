package patient

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/patient"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

type Create struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreate(repo domain.Repository, sink audit.Sink) *Create {
	return &Create{repo: repo, audit: sink}
}

// Execute valida, checa duplicidade e persiste o paciente, carimbando
// quem criou (criador = atualizador = conta que chamou).
func (uc *Create) Execute(ctx context.Context, in Input, actingUserID uint) (*models.Patient, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := &models.Patient{
		Active:    true,
		CreatedBy: actingUserID,
		UpdatedBy: actingUserID,
	}
	in.apply(p)

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: &p.ID,
	})

	return p, nil
}
