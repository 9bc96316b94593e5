package account

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
)

type Delete struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDelete(repo domain.Repository, sink audit.Sink) *Delete {
	return &Delete{repo: repo, audit: sink}
}

// Execute remove a conta em definitivo (contas não têm soft delete).
// Ninguém exclui a própria conta.
func (uc *Delete) Execute(ctx context.Context, id uint, actingUserID uint) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.ID == actingUserID {
		return httperr.ErrBusiness("self_modification_denied")
	}

	if err := uc.repo.Delete(ctx, user.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return nil
}
