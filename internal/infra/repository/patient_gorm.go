package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/validators"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) List(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientGormRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("patient_not_found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *PatientGormRepository) HasDuplicate(
	ctx context.Context,
	email, cpf string,
	rg *string,
	excludeID uint,
) (bool, error) {
	return hasDuplicate(r.db.WithContext(ctx), email, cpf, rg, excludeID)
}

// hasDuplicate compara cpf pelos dígitos: "123.456.789-00" e "12345678900"
// são o mesmo documento.
func hasDuplicate(db *gorm.DB, email, cpf string, rg *string, excludeID uint) (bool, error) {
	q := db.Model(&models.Patient{}).
		Where(
			"(email = ? OR regexp_replace(cpf, '[^0-9]', '', 'g') = ?)",
			email,
			validators.DigitsOnly(cpf),
		)

	if rg != nil && *rg != "" {
		q = db.Model(&models.Patient{}).
			Where(
				"(email = ? OR regexp_replace(cpf, '[^0-9]', '', 'g') = ? OR rg = ?)",
				email,
				validators.DigitsOnly(cpf),
				*rg,
			)
	}

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PatientGormRepository) Create(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dup, err := hasDuplicate(tx, p.Email, p.CPF, p.RG, 0)
		if err != nil {
			return err
		}
		if dup {
			return httperr.ErrBusiness("duplicate_patient")
		}
		// O índice único de cpf é a barreira final para inserções
		// concorrentes que passaram juntas pela contagem.
		if err := tx.Create(p).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("duplicate_patient")
			}
			return err
		}
		return nil
	})
}

func (r *PatientGormRepository) Save(ctx context.Context, p *models.Patient) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("duplicate_patient")
		}
		return err
	}
	return nil
}

func (r *PatientGormRepository) SoftDelete(ctx context.Context, p *models.Patient) error {
	// Delete em modelo com gorm.DeletedAt apenas grava o tombstone.
	return r.db.WithContext(ctx).Delete(p).Error
}
