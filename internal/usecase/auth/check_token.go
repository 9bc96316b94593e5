package auth

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/token"
)

type CheckToken struct {
	accounts account.Repository
	tokens   *token.Service
}

func NewCheckToken(accounts account.Repository, tokens *token.Service) *CheckToken {
	return &CheckToken{accounts: accounts, tokens: tokens}
}

// Execute valida o token e confirma que a conta ainda existe e está
// ativa. Um token não expirado de conta desativada falha aqui.
func (uc *CheckToken) Execute(ctx context.Context, raw string) (*models.User, error) {
	if raw == "" {
		return nil, httperr.ErrBusiness("missing_token")
	}

	claims, err := uc.tokens.Verify(raw)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	userID, err := claims.AccountID()
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	user, err := uc.accounts.GetByID(ctx, userID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("user_deactivated")
		}
		return nil, err
	}

	if !user.Active {
		return nil, httperr.ErrBusiness("user_deactivated")
	}

	return user, nil
}
