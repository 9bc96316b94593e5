package patient

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/patient"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

type ToggleActive struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewToggleActive(repo domain.Repository, sink audit.Sink) *ToggleActive {
	return &ToggleActive{repo: repo, audit: sink}
}

func (uc *ToggleActive) Execute(ctx context.Context, id uint, actingUserID uint) (*models.Patient, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Active = !p.Active
	p.UpdatedBy = actingUserID

	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "patient_status_toggled",
		Entity:   "patient",
		EntityID: &p.ID,
		Metadata: map[string]any{"active": p.Active},
	})

	return p, nil
}
