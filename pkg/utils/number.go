package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingDigits = regexp.MustCompile(`\d+`)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParsePercent converte uma string de porcentagem de exibição ("3.2%", "3,2%")
// em número. Valores malformados viram zero, acompanhando o comportamento do
// dashboard.
func ParsePercent(s string) float64 {
	return parseLocalizedNumber(strings.ReplaceAll(s, "%", ""))
}

// ParseCurrency converte uma string monetária de exibição ("R$ 4.50",
// "R$ 4,50") em número. Valores malformados viram zero.
func ParseCurrency(s string) float64 {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "$", "")
	return parseLocalizedNumber(s)
}

// LeadingInt extrai o primeiro inteiro de uma string de tempo ativo
// ("19 horas ativo" -> 19, "10h" -> 10). Sem dígitos, retorna zero.
func LeadingInt(s string) int {
	match := leadingDigits.FindString(s)
	if match == "" {
		return 0
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	return n
}

// parseLocalizedNumber aceita separador decimal com vírgula ou ponto. Quando
// há vírgula, pontos anteriores são tratados como separador de milhar.
func parseLocalizedNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return f
}
