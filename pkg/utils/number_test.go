package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePercent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "formato com ponto", input: "3.2%", expected: 3.2},
		{name: "formato com vírgula", input: "3,2%", expected: 3.2},
		{name: "sem símbolo", input: "12.8", expected: 12.8},
		{name: "com espaços", input: " 4.5% ", expected: 4.5},
		{name: "malformado vira zero", input: "N/A", expected: 0},
		{name: "vazio vira zero", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePercent(tt.input))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "real com ponto", input: "R$ 4.50", expected: 4.5},
		{name: "real com vírgula", input: "R$ 4,50", expected: 4.5},
		{name: "milhar com vírgula decimal", input: "R$ 1.234,56", expected: 1234.56},
		{name: "sem símbolo", input: "2.90", expected: 2.9},
		{name: "malformado vira zero", input: "grátis", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCurrency(tt.input))
		})
	}
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 19, LeadingInt("19 horas ativo"))
	assert.Equal(t, 1, LeadingInt("1 dia ativo"))
	assert.Equal(t, 10, LeadingInt("10h"))
	assert.Equal(t, 0, LeadingInt("sem tempo"))
	assert.Equal(t, 0, LeadingInt(""))
}
