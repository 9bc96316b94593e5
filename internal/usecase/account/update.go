package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

type Update struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdate(repo domain.Repository, sink audit.Sink) *Update {
	return &Update{repo: repo, audit: sink}
}

// Execute atualiza nome, email e papel; a senha só muda quando enviada.
func (uc *Update) Execute(ctx context.Context, id uint, in Input, actingUserID uint) (*models.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if err := in.validate(false); err != nil {
		return nil, err
	}

	if in.Email != user.Email {
		taken, err := uc.repo.EmailTaken(ctx, in.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = models.Role(in.Role)

	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
