package domain

// Nomes reservados do conjunto de nichos. "Todos" significa ausência de filtro
// e "Outros" é o fallback para criativos sem nicho reconhecido; nenhum dos
// dois pode ser removido pela edição de nichos.
const (
	NicheAll   = "Todos"
	NicheOther = "Outros"
)

// Niche agrupa criativos sob um rótulo com cor de exibição associada.
type Niche struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"nome"`
	Color       string `json:"cor"`
	Description string `json:"descricao,omitempty"`
}

var nicheColors = map[string]string{
	"Disfunção Erétil": "#ef4444",
	"Diabetes":         "#3b82f6",
	"Emagrecimento":    "#10b981",
}

const defaultNicheColor = "#6b7280"

// NicheColor resolve a cor de exibição de um nicho. Nichos desconhecidos
// recebem a cor neutra padrão.
func NicheColor(name string) string {
	if color, ok := nicheColors[name]; ok {
		return color
	}
	return defaultNicheColor
}
