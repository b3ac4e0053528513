package analyzing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

// Valores assumidos quando o modelo não devolve a linha correspondente.
const (
	defaultScore       = 7.5
	defaultNarrative   = "Criativo com potencial interessante para o nicho."
	defaultPotential   = domain.PotentialMedium
	defaultSuggestions = "Considere testar variações do copy."
)

var scorePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

func buildPrompt(creative *domain.Creative) string {
	ctr, conversion, cpm := "N/A", "N/A", "N/A"
	if creative.Metrics != nil {
		if creative.Metrics.CTR != "" {
			ctr = creative.Metrics.CTR
		}
		if creative.Metrics.Conversion != "" {
			conversion = creative.Metrics.Conversion
		}
		if creative.Metrics.CPM != "" {
			cpm = creative.Metrics.CPM
		}
	}

	return fmt.Sprintf(`
Analise este criativo publicitário e forneça uma avaliação profissional:

**CRIATIVO:**
- Nome: %s
- Nicho: %s
- Mecanismo: %s
- Tempo Ativo: %s
- CTR Atual: %s
- Conversão: %s
- CPM: %s

**FORNEÇA:**
1. NOTA (0-10): Uma nota de 0 a 10 para o potencial de performance
2. ANÁLISE: Análise em 2-3 frases sobre pontos fortes e fracos
3. POTENCIAL: Estimativa de performance (Alto/Médio/Baixo)
4. SUGESTÕES: 1-2 sugestões de melhoria

**FORMATO DE RESPOSTA:**
NOTA: [0-10]
ANÁLISE: [sua análise]
POTENCIAL: [Alto/Médio/Baixo]
SUGESTÕES: [suas sugestões]
`,
		creative.Name,
		creative.Niche,
		creative.Mechanism,
		creative.ActiveTime,
		ctr,
		conversion,
		cpm,
	)
}

// parseModelResponse extrai nota, análise, potencial e sugestões do texto do
// modelo, linha a linha. Linhas ausentes ficam com os valores padrão e a nota
// é limitada ao intervalo [0, 10].
func parseModelResponse(response string) *domain.Analysis {
	score := defaultScore
	narrative := defaultNarrative
	potential := defaultPotential
	suggestions := defaultSuggestions

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "NOTA:"):
			if match := scorePattern.FindString(line); match != "" {
				if parsed, err := strconv.ParseFloat(match, 64); err == nil {
					score = parsed
				}
			}
		case strings.Contains(line, "ANÁLISE:"):
			narrative = strings.TrimSpace(strings.Replace(line, "ANÁLISE:", "", 1))
		case strings.Contains(line, "POTENCIAL:"):
			potential = strings.TrimSpace(strings.Replace(line, "POTENCIAL:", "", 1))
		case strings.Contains(line, "SUGESTÕES:"):
			suggestions = strings.TrimSpace(strings.Replace(line, "SUGESTÕES:", "", 1))
		}
	}

	return &domain.Analysis{
		Score:       clampScore(score),
		Narrative:   narrative,
		Potential:   potential,
		Suggestions: suggestions,
		GeneratedAt: time.Now(),
		ByRealModel: true,
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
