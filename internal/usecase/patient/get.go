package patient

import (
	"context"

	domain "github.com/NovaMenteServices/clinic-manager/internal/domain/patient"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id uint) (*models.Patient, error) {
	return uc.repo.GetByID(ctx, id)
}
