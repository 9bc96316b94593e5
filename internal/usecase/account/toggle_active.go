package account

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

type ToggleActive struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewToggleActive(repo domain.Repository, sink audit.Sink) *ToggleActive {
	return &ToggleActive{repo: repo, audit: sink}
}

// Execute inverte o flag ativo. Ninguém desativa a própria conta.
func (uc *ToggleActive) Execute(ctx context.Context, id uint, actingUserID uint) (*models.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.ID == actingUserID {
		return nil, httperr.ErrBusiness("self_modification_denied")
	}

	user.Active = !user.Active

	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "user_status_toggled",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"active": user.Active},
	})

	return user, nil
}
