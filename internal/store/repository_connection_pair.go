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

var connectionPairColumns = []string{"id", "contact_id", "identifier", "creation_status", "pending_deletion", "created_at"}

type connectionPairRow struct {
	ID              string    `db:"id"`
	ContactID       string    `db:"contact_id"`
	Identifier      string    `db:"identifier"`
	CreationStatus  string    `db:"creation_status"`
	PendingDeletion bool      `db:"pending_deletion"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r connectionPairRow) model() models.ConnectionPair {
	return models.ConnectionPair{
		ID:              r.ID,
		ContactID:       r.ContactID,
		Identifier:      r.Identifier,
		CreationStatus:  models.CreationStatus(r.CreationStatus),
		PendingDeletion: r.PendingDeletion,
		CreatedAt:       r.CreatedAt,
	}
}

type connectionPairRepository struct {
	*DB
	logger *logger.Logger
}

// NewConnectionPairRepository returns the SQLite [ConnectionPairRepository].
func NewConnectionPairRepository(db *DB, logger *logger.Logger) ConnectionPairRepository {
	return &connectionPairRepository{DB: db, logger: logger}
}

func (r *connectionPairRepository) Save(ctx context.Context, p models.ConnectionPair) error {
	query, args, err := psql.Insert("connection_pairs").
		Columns(connectionPairColumns...).
		Values(p.ID, p.ContactID, p.Identifier, string(p.CreationStatus), p.PendingDeletion, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return fmt.Errorf("connection pair %s: %w", p.ID, ErrRecordAlreadyExists)
		}
		logger.FromContext(ctx).Err(err).Str("func", "connectionPairRepository.Save").Str("id", p.ID).Msg("failed to insert connection pair")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *connectionPairRepository) Get(ctx context.Context, id string) (models.ConnectionPair, error) {
	query, args, err := psql.Select(connectionPairColumns...).From("connection_pairs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.ConnectionPair{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var row connectionPairRow
	if err = r.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ConnectionPair{}, fmt.Errorf("connection pair %s: %w", id, ErrRecordNotFound)
		}
		return models.ConnectionPair{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return row.model(), nil
}

func (r *connectionPairRepository) Update(ctx context.Context, p models.ConnectionPair) error {
	query, args, err := psql.Update("connection_pairs").
		Set("creation_status", string(p.CreationStatus)).
		Set("pending_deletion", p.PendingDeletion).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "connectionPairRepository.Update", p.ID, query, args...)
}

func (r *connectionPairRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("connection_pairs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "connectionPairRepository.Delete", id, query, args...)
}

func (r *connectionPairRepository) Find(ctx context.Context, filter models.ConnectionPairFilter) ([]models.ConnectionPair, error) {
	builder := psql.Select(connectionPairColumns...).From("connection_pairs").OrderBy("created_at ASC")

	if filter.ContactID != "" {
		builder = builder.Where(sq.Eq{"contact_id": filter.ContactID})
	}
	if filter.Identifier != "" {
		builder = builder.Where(sq.Eq{"identifier": filter.Identifier})
	}
	if filter.CreationStatus != "" {
		builder = builder.Where(sq.Eq{"creation_status": string(filter.CreationStatus)})
	}
	if filter.PendingDeletion != nil {
		builder = builder.Where(sq.Eq{"pending_deletion": *filter.PendingDeletion})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows []connectionPairRow
	if err = r.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "connectionPairRepository.Find").Msg("failed to query connection pairs")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	result := make([]models.ConnectionPair, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.model())
	}
	return result, nil
}
