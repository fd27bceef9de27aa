// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/models"
)

const upsertBasicRecordSuffix = "ON CONFLICT(id) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at"

type basicRow struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r basicRow) model() models.BasicRecord {
	return models.BasicRecord{
		ID:        models.MiscRecordID(r.ID),
		Content:   json.RawMessage(r.Content),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type basicRepository struct {
	*DB
	logger *logger.Logger
}

// NewBasicRepository returns the SQLite [BasicRepository].
func NewBasicRepository(db *DB, logger *logger.Logger) BasicRepository {
	return &basicRepository{DB: db, logger: logger}
}

func (r *basicRepository) Get(ctx context.Context, id models.MiscRecordID) (models.BasicRecord, error) {
	return getBasicRecord(ctx, r.DB.DB, id)
}

func (r *basicRepository) Save(ctx context.Context, record models.BasicRecord) error {
	return saveBasicRecord(ctx, r.DB.DB, record)
}

func (r *basicRepository) Delete(ctx context.Context, id models.MiscRecordID) error {
	query, args, err := psql.Delete("basic_records").Where(sq.Eq{"id": string(id)}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "basicRepository.Delete", string(id), query, args...)
}

func (r *basicRepository) Mutate(ctx context.Context, id models.MiscRecordID, fn func(content json.RawMessage) (json.RawMessage, error)) error {
	log := logger.FromContext(ctx)

	unlock := r.locks.lock(string(id))
	defer unlock()

	tx, err := r.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "basicRepository.Mutate").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current json.RawMessage
	createdAt := time.Now().UTC()
	record, err := getBasicRecord(ctx, tx, id)
	switch {
	case err == nil:
		current = record.Content
		createdAt = record.CreatedAt
	case errors.Is(err, ErrRecordNotFound):
	default:
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if err = saveBasicRecord(ctx, tx, models.BasicRecord{ID: id, Content: next, CreatedAt: createdAt, UpdatedAt: time.Now().UTC()}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "basicRepository.Mutate").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}
	return nil
}

func getBasicRecord(ctx context.Context, q sqlx.QueryerContext, id models.MiscRecordID) (models.BasicRecord, error) {
	query, args, err := psql.Select("id", "content", "created_at", "updated_at").
		From("basic_records").
		Where(sq.Eq{"id": string(id)}).
		ToSql()
	if err != nil {
		return models.BasicRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var row basicRow
	if err = sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BasicRecord{}, fmt.Errorf("basic record %s: %w", id, ErrRecordNotFound)
		}
		return models.BasicRecord{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return row.model(), nil
}

func saveBasicRecord(ctx context.Context, e sqlx.ExecerContext, record models.BasicRecord) error {
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = now
	}

	query, args, err := psql.Insert("basic_records").
		Columns("id", "content", "created_at", "updated_at").
		Values(string(record.ID), string(record.Content), record.CreatedAt, record.UpdatedAt).
		Suffix(upsertBasicRecordSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = e.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}
