package patient

import (
	"context"

	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/patient"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute lista pacientes sem tombstone, mais recentes primeiro.
func (uc *List) Execute(ctx context.Context) ([]models.Patient, error) {
	return uc.repo.List(ctx)
}
