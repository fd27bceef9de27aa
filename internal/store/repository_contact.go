// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/models"
)

var contactColumns = []string{"id", "alias", "oobi", "group_id", "created_at"}

type contactRow struct {
	ID        string         `db:"id"`
	Alias     string         `db:"alias"`
	Oobi      string         `db:"oobi"`
	GroupID   sql.NullString `db:"group_id"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r contactRow) model() models.Contact {
	return models.Contact{
		ID:        r.ID,
		Alias:     r.Alias,
		Oobi:      r.Oobi,
		GroupID:   r.GroupID.String,
		CreatedAt: r.CreatedAt,
	}
}

type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository returns the SQLite [ContactRepository].
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{DB: db, logger: logger}
}

func (r *contactRepository) Save(ctx context.Context, c models.Contact) error {
	query, args, err := psql.Insert("contacts").
		Columns(contactColumns...).
		Values(c.ID, c.Alias, c.Oobi, nullString(c.GroupID), c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return fmt.Errorf("contact %s: %w", c.ID, ErrRecordAlreadyExists)
		}
		logger.FromContext(ctx).Err(err).Str("func", "contactRepository.Save").Str("id", c.ID).Msg("failed to insert contact")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *contactRepository) Get(ctx context.Context, id string) (models.Contact, error) {
	query, args, err := psql.Select(contactColumns...).From("contacts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var row contactRow
	if err = r.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, fmt.Errorf("contact %s: %w", id, ErrRecordNotFound)
		}
		return models.Contact{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return row.model(), nil
}

func (r *contactRepository) Update(ctx context.Context, c models.Contact) error {
	query, args, err := psql.Update("contacts").
		Set("alias", c.Alias).
		Set("oobi", c.Oobi).
		Set("group_id", nullString(c.GroupID)).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "contactRepository.Update", c.ID, query, args...)
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("contacts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "contactRepository.Delete", id, query, args...)
}

func (r *contactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	return r.find(ctx, psql.Select(contactColumns...).From("contacts").OrderBy("created_at ASC"))
}

func (r *contactRepository) FindByGroupID(ctx context.Context, groupID string) ([]models.Contact, error) {
	return r.find(ctx, psql.Select(contactColumns...).From("contacts").Where(sq.Eq{"group_id": groupID}).OrderBy("created_at ASC"))
}

func (r *contactRepository) find(ctx context.Context, builder sq.SelectBuilder) ([]models.Contact, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows []contactRow
	if err = r.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactRepository.find").Msg("failed to query contacts")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	result := make([]models.Contact, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.model())
	}
	return result, nil
}
