package account

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

// Repository persiste contas de usuário. Contas são hard-deleted.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)

	// Create checa o email e insere dentro de uma única transação.
	// Retorna ErrBusiness("email_already_registered") em conflito.
	Create(ctx context.Context, u *models.User) error

	Save(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error
}
