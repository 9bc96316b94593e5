package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NovaMenteServices/clinic-manager/internal/validators"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"ana@x.com",
		"joao.silva@clinica.com.br",
		"a+b@dominio.org",
	}
	for _, e := range valid {
		assert.True(t, validators.IsEmailValid(e), e)
	}

	invalid := []string{
		"",
		"ana",
		"ana@",
		"@x.com",
		"ana@dominio",
		"ana silva@x.com",
	}
	for _, e := range invalid {
		assert.False(t, validators.IsEmailValid(e), e)
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678900", validators.DigitsOnly("123.456.789-00"))
	assert.Equal(t, "01310100", validators.DigitsOnly("01310-100"))
	assert.Equal(t, "", validators.DigitsOnly("abc-"))
}

func TestIsCPFValid(t *testing.T) {
	assert.True(t, validators.IsCPFValid("123.456.789-00"))
	assert.True(t, validators.IsCPFValid("12345678900"))

	assert.False(t, validators.IsCPFValid(""))
	assert.False(t, validators.IsCPFValid("123.456.789"))
	assert.False(t, validators.IsCPFValid("123.456.789-001"))
}

func TestIsCEPValid(t *testing.T) {
	assert.True(t, validators.IsCEPValid("01310-100"))
	assert.True(t, validators.IsCEPValid("01310100"))

	assert.False(t, validators.IsCEPValid("0131010"))
	assert.False(t, validators.IsCEPValid("01310-1000"))
}

func TestIsDateValid(t *testing.T) {
	assert.True(t, validators.IsDateValid("1990-05-20"))
	assert.True(t, validators.IsDateValid("2024-02-29"))

	assert.False(t, validators.IsDateValid(""))
	assert.False(t, validators.IsDateValid("20/05/1990"))
	assert.False(t, validators.IsDateValid("1990-13-01"))
	assert.False(t, validators.IsDateValid("2023-02-29"))
}
