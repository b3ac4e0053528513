package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

const (
	creativesTable = "criativos c"
	analysesTable  = "analises_ia a"

	// Colunas lidas nas consultas de criativo, na ordem do scan de
	// deserializeCreative.
	creativeColumns = "c.id, c.nome, c.nicho, c.mecanismo, c.dias_ativos, c.cor, c.thumbnail, c.video_url, c.salvo, c.descricao, c.metricas, c.created_at, c.updated_at"
	analysisColumns = "a.nota, a.analise, a.potencial, a.sugestoes, a.analisado_por_ia, a.created_at"
)

// Colunas gravadas nos inserts de criativo, na ordem dos Values.
var creativeInsertColumns = []string{"nome", "nicho", "mecanismo", "dias_ativos", "cor", "thumbnail", "video_url", "salvo", "descricao", "metricas"}

type CreativeRepository interface {
	Probe() error
	FetchAll() ([]*domain.Creative, error)
	GetByID(id int) (*domain.Creative, error)
	Create(creative *domain.Creative) (*domain.Creative, error)
	UpdateFields(id int, updates *domain.UpdateCreativeRequest) error
	Delete(id int) error
	ListNames() (map[string]struct{}, error)
	InsertMissing(creatives []*domain.Creative) (int, error)
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

// Probe verifica se o banco está acessível com uma leitura barata. Falha vira
// ErrSourceUnreachable, nunca um erro fatal.
func (r *creativeRepository) Probe() error {
	probeSQL, probeArgs, err := squirrel.
		Select("1").
		From("criativos").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	rows, err := r.conn.Query(probeSQL, probeArgs...)
	if err != nil {
		return domain.WrapSource(domain.ErrSourceUnreachable, err)
	}
	defer rows.Close()

	return nil
}

// FetchAll retorna os criativos com no máximo uma análise associada cada um,
// ordenados do mais recente para o mais antigo.
func (r *creativeRepository) FetchAll() ([]*domain.Creative, error) {
	fetchSQL, fetchArgs, err := squirrel.
		Select(creativeColumns, analysisColumns).
		From(creativesTable).
		LeftJoin("analises_ia a ON a.criativo_id = c.id").
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	rows, err := r.conn.Query(fetchSQL, fetchArgs...)
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}
	defer rows.Close()

	creatives := make([]*domain.Creative, 0)

	for rows.Next() {
		creative, err := r.deserializeCreative(rows)
		if err != nil {
			return nil, domain.WrapSource(domain.ErrParseFailure, err)
		}

		creatives = append(creatives, creative)
	}

	return creatives, nil
}

func (r *creativeRepository) GetByID(id int) (*domain.Creative, error) {
	getSQL, getArgs, err := squirrel.
		Select(creativeColumns, analysisColumns).
		From(creativesTable).
		LeftJoin("analises_ia a ON a.criativo_id = c.id").
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	rows, err := r.conn.Query(getSQL, getArgs...)
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	creative, err := r.deserializeCreative(rows)
	if err != nil {
		return nil, domain.WrapSource(domain.ErrParseFailure, err)
	}

	return creative, nil
}

func (r *creativeRepository) Create(creative *domain.Creative) (*domain.Creative, error) {
	metricsJSON, err := serializeMetrics(creative.Metrics)
	if err != nil {
		return nil, domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	insertSQL, insertArgs, err := squirrel.
		Insert("criativos").
		Columns(creativeInsertColumns...).
		Values(
			creative.Name,
			creative.Niche,
			creative.Mechanism,
			creative.ActiveTime,
			creative.Color,
			creative.Thumbnail,
			creative.VideoURL,
			creative.Saved,
			creative.Description,
			metricsJSON,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	row := r.conn.QueryRow(insertSQL, insertArgs...)
	if err := row.Scan(&creative.ID, &creative.CreatedAt, &creative.UpdatedAt); err != nil {
		return nil, domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	return creative, nil
}

// UpdateFields aplica uma atualização parcial. O updated_at é sempre carimbado
// pelo banco, independente dos campos enviados.
func (r *creativeRepository) UpdateFields(id int, updates *domain.UpdateCreativeRequest) error {
	queryBuilder := squirrel.
		Update("criativos").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if updates.Name != nil {
		queryBuilder = queryBuilder.Set("nome", *updates.Name)
	}
	if updates.Niche != nil {
		queryBuilder = queryBuilder.Set("nicho", *updates.Niche)
	}
	if updates.Mechanism != nil {
		queryBuilder = queryBuilder.Set("mecanismo", *updates.Mechanism)
	}
	if updates.ActiveTime != nil {
		queryBuilder = queryBuilder.Set("dias_ativos", *updates.ActiveTime)
	}
	if updates.Color != nil {
		queryBuilder = queryBuilder.Set("cor", *updates.Color)
	}
	if updates.Thumbnail != nil {
		queryBuilder = queryBuilder.Set("thumbnail", *updates.Thumbnail)
	}
	if updates.VideoURL != nil {
		queryBuilder = queryBuilder.Set("video_url", *updates.VideoURL)
	}
	if updates.Saved != nil {
		queryBuilder = queryBuilder.Set("salvo", *updates.Saved)
	}
	if updates.Metrics != nil {
		metricsJSON, err := serializeMetrics(updates.Metrics)
		if err != nil {
			return domain.WrapSource(domain.ErrPersistenceFailure, err)
		}
		queryBuilder = queryBuilder.Set("metricas", metricsJSON)
	}

	updateSQL, updateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return domain.WrapSource(domain.ErrPersistenceFailure, errors.Wrapf(pqErr, "code: %s", pqErr.Code))
		}
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	if affected == 0 {
		return domain.WrapSource(domain.ErrPersistenceFailure, errors.Errorf("criativo %d não encontrado", id))
	}

	return nil
}

func (r *creativeRepository) Delete(id int) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("criativos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	return nil
}

// ListNames retorna o conjunto de nomes existentes, usado pela sincronização
// com a planilha para inserir apenas criativos novos.
func (r *creativeRepository) ListNames() (map[string]struct{}, error) {
	namesSQL, namesArgs, err := squirrel.
		Select("nome").
		From("criativos").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	rows, err := r.conn.Query(namesSQL, namesArgs...)
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}
	defer rows.Close()

	names := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, domain.WrapSource(domain.ErrParseFailure, err)
		}
		names[name] = struct{}{}
	}

	return names, nil
}

// InsertMissing insere em lote os criativos cujo nome ainda não existe no
// banco. Retorna quantos foram inseridos.
func (r *creativeRepository) InsertMissing(creatives []*domain.Creative) (int, error) {
	existingNames, err := r.ListNames()
	if err != nil {
		return 0, err
	}

	newCreatives := make([]*domain.Creative, 0, len(creatives))
	for _, creative := range creatives {
		if _, exists := existingNames[creative.Name]; !exists {
			newCreatives = append(newCreatives, creative)
		}
	}

	if len(newCreatives) == 0 {
		return 0, nil
	}

	queryBuilder := squirrel.StatementBuilder.
		Insert("criativos").
		Columns(creativeInsertColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, creative := range newCreatives {
		metricsJSON, err := serializeMetrics(creative.Metrics)
		if err != nil {
			logrus.WithError(err).Warnf("Métricas inválidas para o criativo %q, ignorando", creative.Name)
			continue
		}

		queryBuilder = queryBuilder.Values(
			creative.Name,
			creative.Niche,
			creative.Mechanism,
			creative.ActiveTime,
			creative.Color,
			creative.Thumbnail,
			creative.VideoURL,
			creative.Saved,
			creative.Description,
			metricsJSON,
		)
	}

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	if _, err := r.conn.Exec(insertSQL, insertArgs...); err != nil {
		return 0, domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	return len(newCreatives), nil
}

func (r *creativeRepository) deserializeCreative(rows *sql.Rows) (*domain.Creative, error) {
	creative := &domain.Creative{}

	var (
		videoURL    sql.NullString
		description sql.NullString
		metricsJSON []byte
		score       sql.NullFloat64
		narrative   sql.NullString
		potential   sql.NullString
		suggestions sql.NullString
		byRealModel sql.NullBool
		analyzedAt  sql.NullTime
	)

	if err := rows.Scan(
		&creative.ID,
		&creative.Name,
		&creative.Niche,
		&creative.Mechanism,
		&creative.ActiveTime,
		&creative.Color,
		&creative.Thumbnail,
		&videoURL,
		&creative.Saved,
		&description,
		&metricsJSON,
		&creative.CreatedAt,
		&creative.UpdatedAt,
		&score,
		&narrative,
		&potential,
		&suggestions,
		&byRealModel,
		&analyzedAt,
	); err != nil {
		return nil, err
	}

	if videoURL.Valid {
		creative.VideoURL = &videoURL.String
	}

	if description.Valid {
		creative.Description = description.String
	}

	if len(metricsJSON) > 0 {
		metrics := &domain.Metrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, err
		}
		creative.Metrics = metrics
	}

	if score.Valid {
		creative.Analysis = &domain.Analysis{
			Score:       score.Float64,
			Narrative:   narrative.String,
			Potential:   potential.String,
			Suggestions: suggestions.String,
			ByRealModel: byRealModel.Bool,
			GeneratedAt: analyzedAt.Time,
		}
	}

	return creative, nil
}

func serializeMetrics(metrics *domain.Metrics) ([]byte, error) {
	if metrics == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(metrics)
}
