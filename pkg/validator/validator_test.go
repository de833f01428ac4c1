package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()
	require.NotNil(t, v, "NewValidator() should not return nil")
}

func TestValidateStruct_Valid(t *testing.T) {
	type FlightInput struct {
		Origem      string `validate:"required,len=3"`
		Destino     string `validate:"required,len=3"`
		Direcao     string `validate:"required,oneof=IDA VOLTA INTERNO"`
		NumeroVoo   string `validate:"required"`
		DataIda     string `validate:"omitempty,datetime=2006-01-02"`
		Bagagens    int    `validate:"gte=0"`
		PassageirID string `validate:"omitempty,ulid"`
	}

	v := NewValidator()
	in := FlightInput{
		Origem:      "GRU",
		Destino:     "LIS",
		Direcao:     "IDA",
		NumeroVoo:   "TP88",
		DataIda:     "2026-07-15",
		Bagagens:    2,
		PassageirID: "01ARZ3NDEKTSV4RRFFQ69G5FAV",
	}

	errors := v.ValidateStruct(in)
	assert.Nil(t, errors, "Expected no validation errors")
}

func TestValidateStruct_Invalid(t *testing.T) {
	type FlightInput struct {
		Origem  string `validate:"required,len=3"`
		Destino string `validate:"required"`
		Direcao string `validate:"required,oneof=IDA VOLTA INTERNO"`
	}

	v := NewValidator()
	in := FlightInput{
		Origem:  "SAO PAULO",
		Destino: "",
		Direcao: "ROUNDTRIP",
	}

	errors := v.ValidateStruct(in)
	require.NotNil(t, errors, "Expected validation errors")

	assert.Len(t, errors, 3, "Expected 3 validation errors")
	assert.Contains(t, errors, "Origem")
	assert.Contains(t, errors, "Destino")
	assert.Contains(t, errors, "Direcao")
	assert.Equal(t, "Destino is required", errors["Destino"])
	assert.Equal(t, "Direcao must be one of the following: IDA VOLTA INTERNO", errors["Direcao"])
}

func TestValidateStruct_PackageLevel(t *testing.T) {
	type LeadInput struct {
		ClienteID string `validate:"required,ulid"`
	}

	errors := ValidateStruct(LeadInput{ClienteID: "not-a-ulid"})
	require.NotNil(t, errors, "Expected validation errors")
	assert.Len(t, errors, 1)
	assert.Equal(t, "Cliente ID must be a valid ULID", errors["ClienteID"])
}

func TestPrettifyFieldName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"clienteNome", "Cliente Nome"},
		{"quoteID", "Quote ID"},
		{"dataVolta", "Data Volta"},
		{"valor", "Valor"},
	}

	for _, test := range tests {
		result := prettifyFieldName(test.input)
		assert.Equal(t, test.expected, result, "prettifyFieldName(%s) should return %s", test.input, test.expected)
	}
}
