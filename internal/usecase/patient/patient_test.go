package patient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	ucpatient "github.com/NovaMenteServices/clinic-manager/internal/usecase/patient"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) HasDuplicate(ctx context.Context, email, cpf string, rg *string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, cpf, rg, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, p *models.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientRepository) Save(ctx context.Context, p *models.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientRepository) SoftDelete(ctx context.Context, p *models.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// recordingSink captura eventos de auditoria emitidos pelos usecases.
type recordingSink struct {
	events []audit.Event
}

func (s *recordingSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

func validInput() ucpatient.Input {
	return ucpatient.Input{
		Name:             "Ana Lima",
		Email:            "ana@x.com",
		Phone:            "11 99999-0000",
		DateOfBirth:      "1990-05-20",
		Gender:           "feminino",
		CPF:              "123.456.789-00",
		MaritalStatus:    "solteiro",
		EmergencyContact: "José Lima",
		EmergencyPhone:   "11 98888-0000",
	}
}

func existingPatient() *models.Patient {
	return &models.Patient{
		ID:               3,
		Name:             "Ana Lima",
		Email:            "ana@x.com",
		Phone:            "11 99999-0000",
		DateOfBirth:      "1990-05-20",
		Gender:           models.GenderFeminino,
		CPF:              "123.456.789-00",
		MaritalStatus:    models.MaritalSolteiro,
		EmergencyContact: "José Lima",
		EmergencyPhone:   "11 98888-0000",
		Status:           models.StatusAtivo,
		Active:           true,
		CreatedBy:        1,
		UpdatedBy:        1,
	}
}

func TestCreateStampsCreatorAndUpdater(t *testing.T) {
	repo := new(MockPatientRepository)
	sink := &recordingSink{}
	uc := ucpatient.NewCreate(repo, sink)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Patient")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Patient).ID = 10
		}).
		Return(nil)

	p, err := uc.Execute(context.Background(), validInput(), 5)

	assert.NoError(t, err)
	assert.Equal(t, uint(5), p.CreatedBy)
	assert.Equal(t, uint(5), p.UpdatedBy)
	assert.True(t, p.Active)
	assert.Equal(t, models.StatusAtivo, p.Status)
	assert.Equal(t, "123.456.789-00", p.CPF)

	assert.Len(t, sink.events, 1)
	assert.Equal(t, "patient_created", sink.events[0].Action)
	repo.AssertExpectations(t)
}

func TestCreateMissingRequiredFields(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewCreate(repo, &recordingSink{})

	in := validInput()
	in.Name = ""
	in.CPF = ""

	_, err := uc.Execute(context.Background(), in, 5)

	ve, ok := httperr.AsValidation(err)
	assert.True(t, ok)

	fields := make(map[string]bool)
	for _, f := range ve.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["cpf"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateInvalidFormats(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewCreate(repo, &recordingSink{})

	in := validInput()
	in.Email = "not-an-email"
	in.CPF = "123.456"
	in.CEP = "123"
	in.Gender = "desconhecido"

	_, err := uc.Execute(context.Background(), in, 5)

	ve, ok := httperr.AsValidation(err)
	assert.True(t, ok)

	fields := make(map[string]bool)
	for _, f := range ve.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["cpf"])
	assert.True(t, fields["cep"])
	assert.True(t, fields["gender"])
}

func TestCreateDuplicateCPF(t *testing.T) {
	repo := new(MockPatientRepository)
	sink := &recordingSink{}
	uc := ucpatient.NewCreate(repo, sink)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Patient")).
		Return(httperr.ErrBusiness("duplicate_patient"))

	_, err := uc.Execute(context.Background(), validInput(), 5)

	assert.True(t, httperr.IsBusiness(err, "duplicate_patient"))
	assert.Empty(t, sink.events)
}

func TestUpdateNotFound(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewUpdate(repo, &recordingSink{})

	repo.On("GetByID", mock.Anything, uint(99)).
		Return(nil, httperr.ErrBusiness("patient_not_found"))

	_, err := uc.Execute(context.Background(), 99, validInput(), 5)
	assert.True(t, httperr.IsBusiness(err, "patient_not_found"))
}

func TestUpdateSkipsDuplicateCheckWhenUniqueFieldsUnchanged(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewUpdate(repo, &recordingSink{})

	repo.On("GetByID", mock.Anything, uint(3)).Return(existingPatient(), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Patient")).Return(nil)

	in := validInput()
	in.CPF = "12345678900" // mesmos dígitos, pontuação diferente
	in.Occupation = "Professora"

	p, err := uc.Execute(context.Background(), 3, in, 8)

	assert.NoError(t, err)
	assert.Equal(t, uint(8), p.UpdatedBy)
	assert.Equal(t, "Professora", p.Occupation)
	repo.AssertNotCalled(t, "HasDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateChecksDuplicateWhenEmailChanged(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewUpdate(repo, &recordingSink{})

	repo.On("GetByID", mock.Anything, uint(3)).Return(existingPatient(), nil)
	repo.On("HasDuplicate", mock.Anything, "outra@x.com", "123.456.789-00", (*string)(nil), uint(3)).
		Return(true, nil)

	in := validInput()
	in.Email = "outra@x.com"

	_, err := uc.Execute(context.Background(), 3, in, 8)
	assert.True(t, httperr.IsBusiness(err, "duplicate_patient"))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestToggleActiveTwiceRestoresOriginal(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewToggleActive(repo, &recordingSink{})

	p := existingPatient()
	repo.On("GetByID", mock.Anything, uint(3)).Return(p, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Patient")).Return(nil)

	first, err := uc.Execute(context.Background(), 3, 8)
	assert.NoError(t, err)
	assert.False(t, first.Active)

	second, err := uc.Execute(context.Background(), 3, 8)
	assert.NoError(t, err)
	assert.True(t, second.Active)
	assert.Equal(t, uint(8), second.UpdatedBy)
}

func TestDeleteStampsUpdaterAndSoftDeletes(t *testing.T) {
	repo := new(MockPatientRepository)
	sink := &recordingSink{}
	uc := ucpatient.NewDelete(repo, sink)

	p := existingPatient()
	repo.On("GetByID", mock.Anything, uint(3)).Return(p, nil)
	repo.On("Save", mock.Anything, p).Return(nil)
	repo.On("SoftDelete", mock.Anything, p).Return(nil)

	err := uc.Execute(context.Background(), 3, 8)

	assert.NoError(t, err)
	assert.Equal(t, uint(8), p.UpdatedBy)
	assert.Len(t, sink.events, 1)
	assert.Equal(t, "patient_deleted", sink.events[0].Action)
	repo.AssertExpectations(t)
}

func TestUpdateOmittedStatusKeepsStoredValue(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewUpdate(repo, &recordingSink{})

	p := existingPatient()
	p.Status = models.StatusArquivado
	repo.On("GetByID", mock.Anything, uint(3)).Return(p, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Patient")).Return(nil)

	in := validInput() // sem status

	updated, err := uc.Execute(context.Background(), 3, in, 8)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusArquivado, updated.Status)
}

func TestUpdateExplicitStatusStillApplies(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := ucpatient.NewUpdate(repo, &recordingSink{})

	p := existingPatient()
	p.Status = models.StatusArquivado
	repo.On("GetByID", mock.Anything, uint(3)).Return(p, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Patient")).Return(nil)

	in := validInput()
	in.Status = "aguardando"

	updated, err := uc.Execute(context.Background(), 3, in, 8)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusAguardando, updated.Status)
}
