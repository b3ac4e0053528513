package cataloging

import (
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

// Niches devolve uma cópia da lista corrente de nichos.
func (s *catalogService) Niches() []*domain.Niche {
	s.mu.RLock()
	defer s.mu.RUnlock()

	niches := make([]*domain.Niche, len(s.niches))
	copy(niches, s.niches)

	return niches
}

// SetNiches substitui a lista inteira de nichos. Os sentinelas "Todos" e
// "Outros" são preservados mesmo que ausentes da lista enviada, e o filtro
// selecionado volta para "Todos" quando o nicho escolhido deixa de existir.
func (s *catalogService) SetNiches(niches []*domain.Niche) []*domain.Niche {
	normalized := ensureSentinels(niches)

	s.mu.Lock()
	s.niches = normalized

	if !containsNiche(normalized, s.selectedNiche) {
		s.selectedNiche = domain.NicheAll
	}
	s.mu.Unlock()

	return s.Niches()
}

func (s *catalogService) CreateNiche(niche *domain.Niche) (*domain.Niche, error) {
	if isSentinel(niche.Name) {
		return nil, ErrReservedNiche
	}

	if niche.Color == "" {
		niche.Color = domain.NicheColor(niche.Name)
	}

	if s.isConnected() {
		created, err := s.nicheRepo.Create(niche)
		if err != nil {
			return nil, err
		}
		niche = created
	}

	s.mu.Lock()
	// Mantém "Outros" como último item da lista
	insertAt := len(s.niches)
	if insertAt > 0 && s.niches[insertAt-1].Name == domain.NicheOther {
		insertAt--
	}
	s.niches = append(s.niches[:insertAt], append([]*domain.Niche{niche}, s.niches[insertAt:]...)...)
	s.mu.Unlock()

	return niche, nil
}

func (s *catalogService) UpdateNiche(niche *domain.Niche) error {
	if isSentinel(niche.Name) {
		return ErrReservedNiche
	}

	s.mu.Lock()
	index := -1
	var prior *domain.Niche
	for i, current := range s.niches {
		if current.ID == niche.ID && !isSentinel(current.Name) {
			index = i
			prior = current
			s.niches[i] = niche
			break
		}
	}
	s.mu.Unlock()

	if index < 0 {
		return ErrNicheNotFound
	}

	if s.isConnected() {
		if err := s.nicheRepo.Update(niche); err != nil {
			// Restaura o valor vigente antes desta chamada, como no
			// rollback do toggle de salvo
			s.mu.Lock()
			if index < len(s.niches) && s.niches[index] == niche {
				s.niches[index] = prior
			}
			s.mu.Unlock()
			return err
		}
	}

	return nil
}

func (s *catalogService) DeleteNiche(name string) error {
	if isSentinel(name) {
		return ErrReservedNiche
	}

	s.mu.Lock()
	index := -1
	var removed *domain.Niche
	for i, current := range s.niches {
		if current.Name == name {
			index = i
			removed = current
			break
		}
	}

	if index < 0 {
		s.mu.Unlock()
		return ErrNicheNotFound
	}

	s.niches = append(s.niches[:index], s.niches[index+1:]...)

	if s.selectedNiche == name {
		s.selectedNiche = domain.NicheAll
	}
	s.mu.Unlock()

	if s.isConnected() && removed.ID > 0 {
		if err := s.nicheRepo.Delete(removed.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *catalogService) SelectedNiche() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedNiche
}

// SelectNiche registra o filtro de nicho em uso. Nome desconhecido cai no
// sentinela "Todos".
func (s *catalogService) SelectNiche(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if containsNiche(s.niches, name) {
		s.selectedNiche = name
		return
	}
	s.selectedNiche = domain.NicheAll
}

// reloadNiches recarrega os nichos do banco quando há conexão; sem conexão a
// lista corrente é mantida.
func (s *catalogService) reloadNiches(connected bool) {
	if !connected {
		return
	}

	niches, err := s.nicheRepo.List()
	if err != nil {
		s.logger.WithError(err).Warn("Falha ao carregar nichos do banco")
		return
	}
	if len(niches) == 0 {
		return
	}

	normalized := ensureSentinels(niches)

	s.mu.Lock()
	s.niches = normalized
	if !containsNiche(normalized, s.selectedNiche) {
		s.selectedNiche = domain.NicheAll
	}
	s.mu.Unlock()
}

func (s *catalogService) isConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func isSentinel(name string) bool {
	return name == domain.NicheAll || name == domain.NicheOther
}

func containsNiche(niches []*domain.Niche, name string) bool {
	for _, niche := range niches {
		if niche.Name == name {
			return true
		}
	}
	return false
}

// ensureSentinels garante "Todos" no início e "Outros" no fim da lista.
func ensureSentinels(niches []*domain.Niche) []*domain.Niche {
	normalized := make([]*domain.Niche, 0, len(niches)+2)

	normalized = append(normalized, &domain.Niche{Name: domain.NicheAll, Color: "#6b7280"})

	var other *domain.Niche
	for _, niche := range niches {
		switch niche.Name {
		case domain.NicheAll:
			// Já inserido na frente
		case domain.NicheOther:
			other = niche
		default:
			normalized = append(normalized, niche)
		}
	}

	if other == nil {
		other = &domain.Niche{Name: domain.NicheOther, Color: "#8b5cf6"}
	}

	return append(normalized, other)
}
