package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creative-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
)

type NicheRepository interface {
	List() ([]*domain.Niche, error)
	Create(niche *domain.Niche) (*domain.Niche, error)
	Update(niche *domain.Niche) error
	Delete(id int) error
}

type nicheRepository struct {
	conn *postgres.Connection
}

func NewNicheRepository(conn *postgres.Connection) NicheRepository {
	return &nicheRepository{
		conn: conn,
	}
}

func (r *nicheRepository) List() ([]*domain.Niche, error) {
	listSQL, listArgs, err := squirrel.
		Select("id, nome, cor, COALESCE(descricao, '')").
		From("nichos").
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}

	rows, err := r.conn.Query(listSQL, listArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, domain.WrapSource(domain.ErrSourceUnreachable, err)
	}
	defer rows.Close()

	niches := make([]*domain.Niche, 0)
	for rows.Next() {
		niche := &domain.Niche{}
		if err := rows.Scan(&niche.ID, &niche.Name, &niche.Color, &niche.Description); err != nil {
			return nil, domain.WrapSource(domain.ErrParseFailure, err)
		}
		niches = append(niches, niche)
	}

	return niches, nil
}

func (r *nicheRepository) Create(niche *domain.Niche) (*domain.Niche, error) {
	insertSQL, insertArgs, err := squirrel.
		Insert("nichos").
		Columns("nome", "cor", "descricao").
		Values(niche.Name, niche.Color, niche.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	row := r.conn.QueryRow(insertSQL, insertArgs...)
	if err := row.Scan(&niche.ID); err != nil {
		return nil, domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	return niche, nil
}

func (r *nicheRepository) Update(niche *domain.Niche) error {
	updateSQL, updateArgs, err := squirrel.
		Update("nichos").
		Set("nome", niche.Name).
		Set("cor", niche.Color).
		Set("descricao", niche.Description).
		Where(squirrel.Eq{"id": niche.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	if _, err := r.conn.Exec(updateSQL, updateArgs...); err != nil {
		return domain.WrapSource(domain.ErrPersistenceFailure, err)
	}

	return nil
}

func (r *nicheRepository) Delete(id int) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("nichos").
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
