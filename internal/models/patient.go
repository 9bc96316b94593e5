package models

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMasculino       Gender = "masculino"
	GenderFeminino        Gender = "feminino"
	GenderOutro           Gender = "outro"
	GenderPrefiroNaoInformar Gender = "prefiro_nao_informar"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculino, GenderFeminino, GenderOutro, GenderPrefiroNaoInformar:
		return true
	}
	return false
}

type MaritalStatus string

const (
	MaritalSolteiro   MaritalStatus = "solteiro"
	MaritalCasado     MaritalStatus = "casado"
	MaritalDivorciado MaritalStatus = "divorciado"
	MaritalViuvo      MaritalStatus = "viuvo"
	MaritalOutro      MaritalStatus = "outro"
)

func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalSolteiro, MaritalCasado, MaritalDivorciado, MaritalViuvo, MaritalOutro:
		return true
	}
	return false
}

type PatientStatus string

const (
	StatusAtivo      PatientStatus = "ativo"
	StatusInativo    PatientStatus = "inativo"
	StatusAguardando PatientStatus = "aguardando"
	StatusArquivado  PatientStatus = "arquivado"
)

func (s PatientStatus) IsValid() bool {
	switch s {
	case StatusAtivo, StatusInativo, StatusAguardando, StatusArquivado:
		return true
	}
	return false
}

type PatientSource string

const (
	SourceIndicacao    PatientSource = "indicacao"
	SourceSite         PatientSource = "site"
	SourceRedesSociais PatientSource = "redes_sociais"
	SourceConvenio     PatientSource = "convenio"
	SourceOutro        PatientSource = "outro"
)

func (s PatientSource) IsValid() bool {
	switch s {
	case SourceIndicacao, SourceSite, SourceRedesSociais, SourceConvenio, SourceOutro:
		return true
	}
	return false
}

// Paciente da clínica. Exclusão é sempre soft delete: o registro recebe
// deleted_at e some das consultas normais, mas a linha (e o id) permanecem.
// Unicidade de email e rg é garantida por índice parcial (deleted_at IS NULL);
// a de cpf ignora pontuação e é verificada em transação no repositório.
type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Email       string `gorm:"size:150;not null;uniqueIndex:idx_patients_email,where:deleted_at IS NULL" json:"email"`
	Phone       string `gorm:"size:20;not null" json:"phone"`
	DateOfBirth string `gorm:"size:10;not null" json:"dateOfBirth"`
	Gender      Gender `gorm:"size:30;not null" json:"gender"`

	CPF string  `gorm:"size:14;not null" json:"cpf"`
	RG  *string `gorm:"size:20;uniqueIndex:idx_patients_rg,where:deleted_at IS NULL" json:"rg"`

	MaritalStatus MaritalStatus `gorm:"size:20;not null" json:"maritalStatus"`
	Occupation    string        `gorm:"size:100" json:"occupation"`

	Address string `gorm:"size:200" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:50" json:"state"`
	CEP     string `gorm:"size:9" json:"cep"`

	EmergencyContact string `gorm:"size:150;not null" json:"emergencyContact"`
	EmergencyPhone   string `gorm:"size:20;not null" json:"emergencyPhone"`

	HealthInsurance         string `gorm:"size:100" json:"healthInsurance"`
	InsuranceNumber         string `gorm:"size:50" json:"insuranceNumber"`
	InsuranceExpirationDate string `gorm:"size:10" json:"insuranceExpirationDate"`

	Status PatientStatus `gorm:"size:20;not null;default:'ativo'" json:"status"`
	Notes  string        `gorm:"type:text" json:"notes"`
	Source PatientSource `gorm:"size:20" json:"source"`

	FirstAppointmentDate string `gorm:"size:10" json:"firstAppointmentDate"`
	LastAppointmentDate  string `gorm:"size:10" json:"lastAppointmentDate"`
	PreferredSchedule    string `gorm:"size:100" json:"preferredSchedule"`

	Active bool `gorm:"not null;default:true" json:"active"`

	CreatedBy uint `gorm:"not null" json:"createdBy"`
	UpdatedBy uint `gorm:"not null" json:"updatedBy"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
