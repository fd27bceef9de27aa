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

var credentialColumns = []string{"id", "identifier_id", "connection_id", "schema_said", "status", "is_archived", "pending_deletion", "created_at"}

type credentialRow struct {
	ID              string    `db:"id"`
	IdentifierID    string    `db:"identifier_id"`
	ConnectionID    string    `db:"connection_id"`
	SchemaSaid      string    `db:"schema_said"`
	Status          string    `db:"status"`
	IsArchived      bool      `db:"is_archived"`
	PendingDeletion bool      `db:"pending_deletion"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r credentialRow) model() models.CredentialMetadata {
	return models.CredentialMetadata(r)
}

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository returns the SQLite [CredentialRepository].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{DB: db, logger: logger}
}

func (r *credentialRepository) Save(ctx context.Context, c models.CredentialMetadata) error {
	query, args, err := psql.Insert("credentials").
		Columns(credentialColumns...).
		Values(c.ID, c.IdentifierID, c.ConnectionID, c.SchemaSaid, c.Status, c.IsArchived, c.PendingDeletion, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return fmt.Errorf("credential %s: %w", c.ID, ErrRecordAlreadyExists)
		}
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *credentialRepository) Get(ctx context.Context, id string) (models.CredentialMetadata, error) {
	query, args, err := psql.Select(credentialColumns...).From("credentials").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.CredentialMetadata{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var row credentialRow
	if err = r.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CredentialMetadata{}, fmt.Errorf("credential %s: %w", id, ErrRecordNotFound)
		}
		return models.CredentialMetadata{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return row.model(), nil
}

func (r *credentialRepository) Update(ctx context.Context, c models.CredentialMetadata) error {
	query, args, err := psql.Update("credentials").
		Set("status", c.Status).
		Set("is_archived", c.IsArchived).
		Set("pending_deletion", c.PendingDeletion).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "credentialRepository.Update", c.ID, query, args...)
}

func (r *credentialRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("credentials").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "credentialRepository.Delete", id, query, args...)
}

func (r *credentialRepository) FindPendingDeletion(ctx context.Context) ([]models.CredentialMetadata, error) {
	query, args, err := psql.Select(credentialColumns...).
		From("credentials").
		Where(sq.Eq{"pending_deletion": true}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows []credentialRow
	if err = r.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	result := make([]models.CredentialMetadata, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.model())
	}
	return result, nil
}
