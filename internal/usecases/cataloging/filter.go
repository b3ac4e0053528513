package cataloging

import (
	"sort"
	"strings"

	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/utils"
)

func matchesFilter(creative *domain.Creative, opts ListOptions) bool {
	if opts.Search != "" {
		search := strings.ToLower(opts.Search)
		matchSearch := strings.Contains(strings.ToLower(creative.Name), search) ||
			strings.Contains(strings.ToLower(creative.Niche), search) ||
			strings.Contains(strings.ToLower(creative.Mechanism), search)
		if !matchSearch {
			return false
		}
	}

	if opts.Niche != "" && opts.Niche != domain.NicheAll && creative.Niche != opts.Niche {
		return false
	}

	if opts.SavedOnly && !creative.Saved {
		return false
	}

	return true
}

// sortCreatives ordena a listagem in-place. "recentes" e "antigos" comparam o
// número inicial do tempo ativo ("12 dias" -> 12): recentes ordena do menor
// para o maior e antigos do maior para o menor, reproduzindo o comportamento
// que o dashboard sempre exibiu.
func sortCreatives(creatives []*domain.Creative, order string) {
	switch order {
	case SortOldest:
		sort.SliceStable(creatives, func(i, j int) bool {
			return utils.LeadingInt(creatives[i].ActiveTime) > utils.LeadingInt(creatives[j].ActiveTime)
		})
	case SortName:
		sort.SliceStable(creatives, func(i, j int) bool {
			return strings.ToLower(creatives[i].Name) < strings.ToLower(creatives[j].Name)
		})
	case SortPerformance:
		sort.SliceStable(creatives, func(i, j int) bool {
			return creativeCTR(creatives[i]) > creativeCTR(creatives[j])
		})
	default: // SortRecent
		sort.SliceStable(creatives, func(i, j int) bool {
			return utils.LeadingInt(creatives[i].ActiveTime) < utils.LeadingInt(creatives[j].ActiveTime)
		})
	}
}

func creativeCTR(creative *domain.Creative) float64 {
	if creative.Metrics == nil {
		return 0
	}
	return utils.ParsePercent(creative.Metrics.CTR)
}
