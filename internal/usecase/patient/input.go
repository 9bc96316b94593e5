package patient

import (
	"strings"

	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/validators"
)

// Input carrega os campos enviados pelo cliente em create e update.
type Input struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"dateOfBirth"`
	Gender      string  `json:"gender"`
	CPF         string  `json:"cpf"`
	RG          *string `json:"rg"`

	MaritalStatus string `json:"maritalStatus"`
	Occupation    string `json:"occupation"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	CEP     string `json:"cep"`

	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`

	HealthInsurance         string `json:"healthInsurance"`
	InsuranceNumber         string `json:"insuranceNumber"`
	InsuranceExpirationDate string `json:"insuranceExpirationDate"`

	Status string `json:"status"`
	Notes  string `json:"notes"`
	Source string `json:"source"`

	FirstAppointmentDate string `json:"firstAppointmentDate"`
	LastAppointmentDate  string `json:"lastAppointmentDate"`
	PreferredSchedule    string `json:"preferredSchedule"`

	Active *bool `json:"active"`
}

func (in *Input) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.CPF = strings.TrimSpace(in.CPF)
	in.CEP = strings.TrimSpace(in.CEP)
	if in.RG != nil {
		rg := strings.TrimSpace(*in.RG)
		if rg == "" {
			in.RG = nil
		} else {
			in.RG = &rg
		}
	}
	if in.Status == "" {
		in.Status = string(models.StatusAtivo)
	}
}

// validate aplica as regras de campo. Funções puras, sem tocar no banco:
// a checagem de duplicidade fica com o repositório.
func (in *Input) validate() error {
	var fields []httperr.FieldError

	required := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"dateOfBirth", in.DateOfBirth},
		{"gender", in.Gender},
		{"cpf", in.CPF},
		{"maritalStatus", in.MaritalStatus},
		{"emergencyContact", in.EmergencyContact},
		{"emergencyPhone", in.EmergencyPhone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, httperr.FieldError{Field: f.name, Message: "Campo obrigatório."})
		}
	}

	if in.Email != "" && !validators.IsEmailValid(in.Email) {
		fields = append(fields, httperr.FieldError{Field: "email", Message: "Email inválido."})
	}
	if in.CPF != "" && !validators.IsCPFValid(in.CPF) {
		fields = append(fields, httperr.FieldError{Field: "cpf", Message: "CPF deve conter 11 dígitos."})
	}
	if in.CEP != "" && !validators.IsCEPValid(in.CEP) {
		fields = append(fields, httperr.FieldError{Field: "cep", Message: "CEP deve conter 8 dígitos."})
	}
	if in.DateOfBirth != "" && !validators.IsDateValid(in.DateOfBirth) {
		fields = append(fields, httperr.FieldError{Field: "dateOfBirth", Message: "Data inválida."})
	}
	if in.InsuranceExpirationDate != "" && !validators.IsDateValid(in.InsuranceExpirationDate) {
		fields = append(fields, httperr.FieldError{Field: "insuranceExpirationDate", Message: "Data inválida."})
	}
	if in.FirstAppointmentDate != "" && !validators.IsDateValid(in.FirstAppointmentDate) {
		fields = append(fields, httperr.FieldError{Field: "firstAppointmentDate", Message: "Data inválida."})
	}
	if in.LastAppointmentDate != "" && !validators.IsDateValid(in.LastAppointmentDate) {
		fields = append(fields, httperr.FieldError{Field: "lastAppointmentDate", Message: "Data inválida."})
	}

	if in.Gender != "" && !models.Gender(in.Gender).IsValid() {
		fields = append(fields, httperr.FieldError{Field: "gender", Message: "Valor inválido."})
	}
	if in.MaritalStatus != "" && !models.MaritalStatus(in.MaritalStatus).IsValid() {
		fields = append(fields, httperr.FieldError{Field: "maritalStatus", Message: "Valor inválido."})
	}
	if !models.PatientStatus(in.Status).IsValid() {
		fields = append(fields, httperr.FieldError{Field: "status", Message: "Valor inválido."})
	}
	if in.Source != "" && !models.PatientSource(in.Source).IsValid() {
		fields = append(fields, httperr.FieldError{Field: "source", Message: "Valor inválido."})
	}

	if len(fields) > 0 {
		return httperr.ValidationError{Fields: fields}
	}
	return nil
}

func (in *Input) apply(p *models.Patient) {
	p.Name = in.Name
	p.Email = in.Email
	p.Phone = in.Phone
	p.DateOfBirth = in.DateOfBirth
	p.Gender = models.Gender(in.Gender)
	p.CPF = in.CPF
	p.RG = in.RG
	p.MaritalStatus = models.MaritalStatus(in.MaritalStatus)
	p.Occupation = in.Occupation
	p.Address = in.Address
	p.City = in.City
	p.State = in.State
	p.CEP = in.CEP
	p.EmergencyContact = in.EmergencyContact
	p.EmergencyPhone = in.EmergencyPhone
	p.HealthInsurance = in.HealthInsurance
	p.InsuranceNumber = in.InsuranceNumber
	p.InsuranceExpirationDate = in.InsuranceExpirationDate
	p.Status = models.PatientStatus(in.Status)
	p.Notes = in.Notes
	p.Source = models.PatientSource(in.Source)
	p.FirstAppointmentDate = in.FirstAppointmentDate
	p.LastAppointmentDate = in.LastAppointmentDate
	p.PreferredSchedule = in.PreferredSchedule
	if in.Active != nil {
		p.Active = *in.Active
	}
}
