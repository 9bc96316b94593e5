package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/token"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	accounts account.Repository
	tokens   *token.Service
}

func NewLogin(accounts account.Repository, tokens *token.Service) *Login {
	return &Login{accounts: accounts, tokens: tokens}
}

// Execute troca email+senha por um token assinado. Conta inexistente e
// senha errada produzem o mesmo erro, para não revelar quais emails
// existem. Conta desativada falha mesmo com a senha correta.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, "", httperr.ErrBusiness("invalid_credentials")
		}
		return nil, "", err
	}

	if !user.Active {
		return nil, "", httperr.ErrBusiness("user_deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", httperr.ErrBusiness("invalid_credentials")
	}

	signed, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, signed, nil
}
