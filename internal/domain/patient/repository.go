package patient

import (
	"context"

	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

// Repository persiste pacientes. Registros com tombstone (deleted_at)
// ficam fora de List, GetByID e das checagens de duplicidade.
type Repository interface {
	List(ctx context.Context) ([]models.Patient, error)
	GetByID(ctx context.Context, id uint) (*models.Patient, error)

	// HasDuplicate procura outro paciente com o mesmo email, mesmo cpf
	// (comparado apenas pelos dígitos) ou mesmo rg, ignorando excludeID.
	HasDuplicate(ctx context.Context, email, cpf string, rg *string, excludeID uint) (bool, error)

	// Create checa duplicidade e insere dentro de uma única transação.
	// Retorna ErrBusiness("duplicate_patient") em conflito.
	Create(ctx context.Context, p *models.Patient) error

	Save(ctx context.Context, p *models.Patient) error
	SoftDelete(ctx context.Context, p *models.Patient) error
}
