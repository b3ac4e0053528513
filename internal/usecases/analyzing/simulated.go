package analyzing

import (
	"time"

	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

type simulatedNiche struct {
	scores      []float64
	narratives  []string
	potentials  []string
	suggestions []string
}

// Tabelas de análise simulada por nicho. Nicho desconhecido cai na tabela de
// Emagrecimento. A linha escolhida depende só do ID do criativo, então a
// simulação é determinística e estável entre execuções.
var simulatedByNiche = map[string]simulatedNiche{
	"Disfunção Erétil": {
		scores: []float64{7.5, 8.2, 6.8, 9.1, 7.9},
		narratives: []string{
			"Mecanismo forte com apelo à autoridade médica. Copy direto e persuasivo.",
			"Abordagem científica convincente. Pode se beneficiar de mais urgência.",
			"Promessa clara mas genérica. Considere personalizar mais o público.",
			"Excelente uso de prova social. Mecanismo único e diferenciado.",
			"Boa estrutura narrativa. Poderia explorar mais dor emocional.",
		},
		potentials: []string{
			domain.PotentialHigh, domain.PotentialHigh, domain.PotentialMedium,
			domain.PotentialHigh, domain.PotentialMedium,
		},
		suggestions: []string{
			"Teste variações com depoimentos reais.",
			"Adicione elementos de urgência temporal.",
			"Segmente por faixa etária específica.",
			"Explore mais o aspecto científico.",
			"Inclua garantia de satisfação.",
		},
	},
	"Diabetes": {
		scores: []float64{8.1, 7.3, 8.7, 6.9, 7.8},
		narratives: []string{
			"Abordagem médica sólida com credibilidade. Mecanismo inovador.",
			"Copy educativo eficaz. Pode melhorar o senso de urgência.",
			"Excelente diferenciação no mercado. Promessa específica e mensurável.",
			"Mecanismo interessante mas precisa de mais prova social.",
			"Boa estrutura de problema-solução. Falta call-to-action mais forte.",
		},
		potentials: []string{
			domain.PotentialHigh, domain.PotentialMedium, domain.PotentialHigh,
			domain.PotentialMedium, domain.PotentialMedium,
		},
		suggestions: []string{
			"Adicione estudos científicos como prova.",
			"Crie senso de urgência com estatísticas.",
			"Teste headlines mais emocionais.",
			"Inclua depoimentos de médicos.",
			"Fortaleça o call-to-action final.",
		},
	},
	"Emagrecimento": {
		scores: []float64{8.9, 7.6, 8.3, 9.2, 7.1},
		narratives: []string{
			"Mecanismo único e diferenciado. Excelente apelo emocional.",
			"Promessa clara mas competitiva. Precisa de mais diferenciação.",
			"Boa estrutura narrativa. Pode explorar mais transformação visual.",
			"Criativo excepcional com mecanismo inovador. Muito persuasivo.",
			"Copy genérico para o nicho. Necessita personalização.",
		},
		potentials: []string{
			domain.PotentialHigh, domain.PotentialMedium, domain.PotentialHigh,
			domain.PotentialHigh, domain.PotentialLow,
		},
		suggestions: []string{
			"Explore mais o aspecto de facilidade.",
			"Adicione antes/depois mais impactantes.",
			"Teste variações com diferentes idades.",
			"Mantenha o mecanismo, teste novos angles.",
			"Reformule completamente o posicionamento.",
		},
	},
}

const fallbackSimulatedNiche = "Emagrecimento"

// simulateAnalysis gera a análise determinística de um criativo sem consultar
// o modelo remoto.
func simulateAnalysis(creative *domain.Creative) *domain.Analysis {
	table, ok := simulatedByNiche[creative.Niche]
	if !ok {
		table = simulatedByNiche[fallbackSimulatedNiche]
	}

	index := (creative.ID - 1) % len(table.scores)
	if index < 0 {
		index += len(table.scores)
	}

	return &domain.Analysis{
		Score:       table.scores[index],
		Narrative:   table.narratives[index],
		Potential:   table.potentials[index],
		Suggestions: table.suggestions[index],
		GeneratedAt: time.Now(),
		ByRealModel: false,
	}
}
