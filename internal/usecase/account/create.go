package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

type Create struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreate(repo domain.Repository, sink audit.Sink) *Create {
	return &Create{repo: repo, audit: sink}
}

func (uc *Create) Execute(ctx context.Context, in Input, actingUserID uint) (*models.User, error) {
	in.normalize()
	if err := in.validate(true); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         models.Role(in.Role),
		Active:       true,
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
