package domain

// Catálogo estático embutido: último nível de fallback quando nem o banco nem
// a planilha respondem. Também serve como estado inicial do dashboard, por
// isso nunca pode ser vazio.

// DefaultNiches retorna o conjunto inicial de nichos, incluindo os sentinelas
// "Todos" e "Outros".
func DefaultNiches() []*Niche {
	return []*Niche{
		{Name: NicheAll, Color: "#6b7280"},
		{Name: "Disfunção Erétil", Color: "#ef4444"},
		{Name: "Diabetes", Color: "#3b82f6"},
		{Name: "Emagrecimento", Color: "#10b981"},
		{Name: NicheOther, Color: "#8b5cf6"},
	}
}

// DefaultCreatives retorna os 15 criativos do catálogo embutido.
func DefaultCreatives() []*Creative {
	return []*Creative{
		{
			ID:          1,
			Name:        "Mission Alpha",
			Niche:       "Disfunção Erétil",
			Mechanism:   "Protocolo espacial de sal desenvolvido pelos astronautas para missões de longa duração. Técnica revolucionária testada em gravidade zero.",
			ActiveTime:  "19 horas ativo",
			Thumbnail:   "/assets/images/criativo-1.png",
			Color:       "#ef4444",
			Saved:       false,
			Description: "Este protocolo foi desenvolvido durante as missões Apollo e testado extensivamente pelos astronautas da NASA. A técnica utiliza uma combinação específica de minerais que foram descobertos durante experimentos em gravidade zero. Os resultados mostraram uma eficácia de 94% em testes controlados realizados no centro espacial Johnson.",
			Metrics:     &Metrics{CTR: "3.2%", Conversion: "12.8%", CPM: "R$ 4.50"},
		},
		{
			ID:          2,
			Name:        "Apollo Recovery",
			Niche:       "Disfunção Erétil",
			Mechanism:   "Técnica de 15 segundos usada na estação espacial internacional para recuperação rápida durante missões críticas.",
			ActiveTime:  "19 horas ativo",
			Thumbnail:   "/assets/images/criativo-2.png",
			Color:       "#ef4444",
			Saved:       false,
			Description: "Desenvolvida pelos engenheiros da SpaceX em colaboração com médicos especializados em medicina espacial. Esta técnica revolucionária foi testada durante 6 meses na Estação Espacial Internacional com resultados surpreendentes.",
			Metrics:     &Metrics{CTR: "4.1%", Conversion: "15.2%", CPM: "R$ 3.80"},
		},
		{
			ID:          3,
			Name:        "Houston Protocol",
			Niche:       "Disfunção Erétil",
			Mechanism:   "Fórmula desenvolvida no centro espacial para resistência extrema durante operações de longa duração no espaço.",
			ActiveTime:  "1 dia ativo",
			Thumbnail:   "/assets/images/criativo-3.png",
			Color:       "#ef4444",
			Saved:       true,
			Description: "O protocolo Houston foi criado especificamente para astronautas que enfrentam missões de longa duração. Utiliza uma combinação de ingredientes naturais que foram testados em condições extremas de microgravidade.",
			Metrics:     &Metrics{CTR: "2.8%", Conversion: "9.5%", CPM: "R$ 5.20"},
		},
		{
			ID:          4,
			Name:        "Mission Control",
			Niche:       "Disfunção Erétil",
			Mechanism:   "Sistema de suporte vital usado pelos comandantes da Apollo 11 para manter performance durante missões críticas.",
			ActiveTime:  "1 dia ativo",
			Thumbnail:   "/assets/images/criativo-4.png",
			Color:       "#ef4444",
			Saved:       false,
			Description: "Baseado nos protocolos médicos utilizados pelos comandantes das missões Apollo. Este sistema foi desenvolvido para garantir que os astronautas mantivessem sua performance física e mental durante as missões mais desafiadoras da história.",
			Metrics:     &Metrics{CTR: "3.7%", Conversion: "11.3%", CPM: "R$ 4.10"},
		},
		{
			ID:          5,
			Name:        "Eagle Landing",
			Niche:       "Disfunção Erétil",
			Mechanism:   "Protocolo de emergência desenvolvido para situações críticas no espaço, garantindo resposta rápida e eficaz.",
			ActiveTime:  "22 dias ativos",
			Thumbnail:   "/assets/images/criativo-1.png",
			Color:       "#ef4444",
			Saved:       true,
			Description: "Inspirado no protocolo de emergência usado durante o pouso da Eagle na Lua. Esta fórmula foi desenvolvida para situações onde a resposta rápida é crucial, utilizando ingredientes que foram testados em condições extremas.",
			Metrics:     &Metrics{CTR: "5.2%", Conversion: "18.7%", CPM: "R$ 2.90"},
		},
		{
			ID:          6,
			Name:        "Dr. Space Medicine",
			Niche:       "Diabetes",
			Mechanism:   "Descoberta revolucionária da NASA para controle glicêmico em gravidade zero, adaptada para uso terrestre.",
			ActiveTime:  "12 horas",
			Thumbnail:   "/assets/images/criativo-4.png",
			Color:       "#3b82f6",
			Saved:       false,
			Description: "Esta descoberta foi feita durante experimentos de longa duração na Estação Espacial Internacional. Os cientistas da NASA descobriram que certas condições do espaço podem ser replicadas na Terra para melhorar o controle glicêmico.",
			Metrics:     &Metrics{CTR: "4.5%", Conversion: "16.8%", CPM: "R$ 3.60"},
		},
		{
			ID:          7,
			Name:        "Lunar Research",
			Niche:       "Diabetes",
			Mechanism:   "Protocolo de 30 segundos desenvolvido pelos cientistas da missão lunar para estabilização rápida da glicose.",
			ActiveTime:  "14 horas",
			Thumbnail:   "/assets/images/criativo-5.png",
			Color:       "#3b82f6",
			Saved:       true,
			Description: "Baseado em pesquisas realizadas durante as missões lunares, este protocolo utiliza uma técnica específica que foi desenvolvida para astronautas que precisavam de estabilização rápida da glicose durante atividades extraveiculares.",
			Metrics:     &Metrics{CTR: "3.9%", Conversion: "13.4%", CPM: "R$ 4.20"},
		},
		{
			ID:          8,
			Name:        "SpaceX Protocol",
			Niche:       "Diabetes",
			Mechanism:   "Sistema de estabilização usado pelos astronautas do Elon Musk durante missões para Marte.",
			ActiveTime:  "22 horas",
			Thumbnail:   "/assets/images/criativo-3.png",
			Color:       "#3b82f6",
			Saved:       false,
			Description: "Desenvolvido pela equipe médica da SpaceX especificamente para as missões de longa duração para Marte. Este protocolo foi testado durante simulações de 6 meses em isolamento completo.",
			Metrics:     &Metrics{CTR: "4.8%", Conversion: "17.2%", CPM: "R$ 3.30"},
		},
		{
			ID:          9,
			Name:        "Mars Mission Prep",
			Niche:       "Diabetes",
			Mechanism:   "Técnica da geladeira espacial que reverte condições em algumas horas, desenvolvida para colonização de Marte.",
			ActiveTime:  "10 horas",
			Thumbnail:   "/assets/images/criativo-4.png",
			Color:       "#3b82f6",
			Saved:       false,
			Description: "Esta técnica inovadora foi desenvolvida como parte dos preparativos para a colonização de Marte. Utiliza princípios de conservação criogênica adaptados para uso médico terrestre.",
			Metrics:     &Metrics{CTR: "3.1%", Conversion: "10.7%", CPM: "R$ 4.80"},
		},
		{
			ID:          10,
			Name:        "Orbital Weight Loss",
			Niche:       "Emagrecimento",
			Mechanism:   "Fórmula de sal rosa desenvolvida para astronautas em missões longas, simulando os efeitos da microgravidade.",
			ActiveTime:  "5 horas",
			Thumbnail:   "/assets/images/criativo-6.png",
			Color:       "#10b981",
			Saved:       true,
			Description: "Baseada nos estudos de perda de massa corporal em microgravidade, esta fórmula replica os efeitos benéficos da gravidade zero no metabolismo humano.",
			Metrics:     &Metrics{CTR: "6.2%", Conversion: "22.1%", CPM: "R$ 2.40"},
		},
		{
			ID:          11,
			Name:        "Zero Gravity Diet",
			Niche:       "Emagrecimento",
			Mechanism:   "Protocolo de perda de peso usado na Estação Espacial Internacional, adaptado para uso terrestre.",
			ActiveTime:  "9 horas",
			Thumbnail:   "/assets/images/criativo-7.png",
			Color:       "#10b981",
			Saved:       false,
			Description: "Este protocolo foi desenvolvido após observações detalhadas dos efeitos da microgravidade no metabolismo dos astronautas durante missões de 6 meses na ISS.",
			Metrics:     &Metrics{CTR: "5.7%", Conversion: "19.8%", CPM: "R$ 2.80"},
		},
		{
			ID:          12,
			Name:        "Cosmic Hydration",
			Niche:       "Emagrecimento",
			Mechanism:   "Sistema de hidratação térmica desenvolvido para missões espaciais, otimizando o metabolismo celular.",
			ActiveTime:  "3 dias",
			Thumbnail:   "/assets/images/criativo-6.png",
			Color:       "#10b981",
			Saved:       false,
			Description: "Desenvolvido pelos engenheiros de suporte vital da NASA, este sistema otimiza a hidratação celular utilizando princípios descobertos durante experimentos em gravidade zero.",
			Metrics:     &Metrics{CTR: "4.3%", Conversion: "14.6%", CPM: "R$ 3.70"},
		},
		{
			ID:          13,
			Name:        "Astronaut Formula",
			Niche:       "Emagrecimento",
			Mechanism:   "Receita secreta usada pelos comandantes da Apollo para manter forma física durante missões de 14 dias.",
			ActiveTime:  "9 horas",
			Thumbnail:   "/assets/images/criativo-7.png",
			Color:       "#10b981",
			Saved:       true,
			Description: "Esta fórmula foi desenvolvida especificamente para os comandantes das missões Apollo, que precisavam manter sua forma física ideal durante as missões lunares de 14 dias.",
			Metrics:     &Metrics{CTR: "5.9%", Conversion: "21.3%", CPM: "R$ 2.60"},
		},
		{
			ID:          14,
			Name:        "Mission Nutrition",
			Niche:       "Emagrecimento",
			Mechanism:   "Fórmula de 4 ingredientes que simula os efeitos da gravidade zero no metabolismo humano.",
			ActiveTime:  "10h",
			Thumbnail:   "/assets/images/criativo-6.png",
			Color:       "#10b981",
			Saved:       false,
			Description: "Baseada em 4 ingredientes específicos que foram identificados durante estudos de metabolismo em microgravidade. Esta fórmula replica os efeitos benéficos da ausência de gravidade.",
			Metrics:     &Metrics{CTR: "4.7%", Conversion: "16.9%", CPM: "R$ 3.20"},
		},
		{
			ID:          15,
			Name:        "Cosmic Berry",
			Niche:       "Emagrecimento",
			Mechanism:   "Superfruta espacial com 2 ingredientes que ativam o metabolismo orbital, descoberta em experimentos da NASA.",
			ActiveTime:  "10h",
			Thumbnail:   "/assets/images/criativo-7.png",
			Color:       "#10b981",
			Saved:       false,
			Description: "Esta superfruta foi descoberta durante experimentos de cultivo em microgravidade. Seus 2 ingredientes ativos foram isolados e testados extensivamente pela NASA.",
			Metrics:     &Metrics{CTR: "6.8%", Conversion: "24.5%", CPM: "R$ 2.10"},
		},
	}
}
