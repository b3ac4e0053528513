package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

type AnalysisRepository interface {
	GetByCreativeID(creativeID int) (*domain.Analysis, error)
	Upsert(creativeID int, analysis *domain.Analysis) error
}

type analysisRepository struct {
	conn *postgres.Connection
}

func NewAnalysisRepository(conn *postgres.Connection) AnalysisRepository {
	return &analysisRepository{
		conn: conn,
	}
}

func (r *analysisRepository) GetByCreativeID(creativeID int) (*domain.Analysis, error) {
	getSQL, getArgs, err := squirrel.
		Select("a.nota, a.analise, a.potencial, a.sugestoes, a.analisado_por_ia, a.created_at").
		From(analysesTable).
		Where(squirrel.Eq{"a.criativo_id": creativeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	analysis := &domain.Analysis{}

	row := r.conn.QueryRow(getSQL, getArgs...)
	if err := row.Scan(
		&analysis.Score,
		&analysis.Narrative,
		&analysis.Potential,
		&analysis.Suggestions,
		&analysis.ByRealModel,
		&analysis.GeneratedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	return analysis, nil
}

// Upsert garante no máximo uma análise armazenada por criativo: uma nova
// avaliação substitui a anterior via ON CONFLICT na chave criativo_id.
func (r *analysisRepository) Upsert(creativeID int, analysis *domain.Analysis) error {
	upsertSQL, upsertArgs, err := squirrel.
		Insert("analises_ia").
		Columns("criativo_id", "nota", "analise", "potencial", "sugestoes", "analisado_por_ia").
		Values(
			creativeID,
			analysis.Score,
			analysis.Narrative,
			analysis.Potential,
			analysis.Suggestions,
			analysis.ByRealModel,
		).
		Suffix(`
			ON CONFLICT (criativo_id) DO UPDATE SET
				nota = EXCLUDED.nota,
				analise = EXCLUDED.analise,
				potencial = EXCLUDED.potencial,
				sugestoes = EXCLUDED.sugestoes,
				analisado_por_ia = EXCLUDED.analisado_por_ia
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	if _, err := r.conn.Exec(upsertSQL, upsertArgs...); err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	return nil
}
