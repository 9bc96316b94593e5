package patient

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/patient"
)

type Delete struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDelete(repo domain.Repository, sink audit.Sink) *Delete {
	return &Delete{repo: repo, audit: sink}
}

// Execute grava o tombstone. A linha e o id permanecem no banco; o
// registro apenas some das leituras normais.
func (uc *Delete) Execute(ctx context.Context, id uint, actingUserID uint) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	p.UpdatedBy = actingUserID
	if err := uc.repo.Save(ctx, p); err != nil {
		return err
	}

	if err := uc.repo.SoftDelete(ctx, p); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "patient_deleted",
		Entity:   "patient",
		EntityID: &p.ID,
	})

	return nil
}
