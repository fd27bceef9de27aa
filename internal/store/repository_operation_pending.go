// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/models"
)

// likeEscaper escapes LIKE wildcards; base64url SAIDs may contain '_'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var operationColumns = []string{"id", "record_type", "correlation_id", "metadata_connection_id", "metadata_identifier", "created_at"}

type operationRow struct {
	ID                   string    `db:"id"`
	RecordType           string    `db:"record_type"`
	CorrelationID        string    `db:"correlation_id"`
	MetadataConnectionID string    `db:"metadata_connection_id"`
	MetadataIdentifier   string    `db:"metadata_identifier"`
	CreatedAt            time.Time `db:"created_at"`
}

func (r operationRow) model() models.PendingOperation {
	return models.PendingOperation{
		ID:            r.ID,
		RecordType:    models.OperationRecordType(r.RecordType),
		CorrelationID: r.CorrelationID,
		Metadata: models.OperationMetadata{
			ConnectionID: r.MetadataConnectionID,
			Identifier:   r.MetadataIdentifier,
		},
		CreatedAt: r.CreatedAt,
	}
}

type operationPendingRepository struct {
	*DB
	logger *logger.Logger
}

// NewOperationPendingRepository returns the SQLite [OperationPendingRepository].
func NewOperationPendingRepository(db *DB, logger *logger.Logger) OperationPendingRepository {
	return &operationPendingRepository{DB: db, logger: logger}
}

func (r *operationPendingRepository) Save(ctx context.Context, op models.PendingOperation) error {
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}

	query, args, err := psql.Insert("operations_pending").
		Columns(operationColumns...).
		Values(op.ID, string(op.RecordType), op.CorrelationID, op.Metadata.ConnectionID, op.Metadata.Identifier, op.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return fmt.Errorf("pending operation %s: %w", op.ID, ErrRecordAlreadyExists)
		}
		logger.FromContext(ctx).Err(err).Str("func", "operationPendingRepository.Save").Str("id", op.ID).Msg("failed to insert pending operation")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *operationPendingRepository) Get(ctx context.Context, id string) (models.PendingOperation, error) {
	query, args, err := psql.Select(operationColumns...).From("operations_pending").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.PendingOperation{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var row operationRow
	if err = r.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingOperation{}, fmt.Errorf("pending operation %s: %w", id, ErrRecordNotFound)
		}
		return models.PendingOperation{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return row.model(), nil
}

func (r *operationPendingRepository) GetAll(ctx context.Context) ([]models.PendingOperation, error) {
	return r.find(ctx, psql.Select(operationColumns...).From("operations_pending").OrderBy("created_at ASC"))
}

func (r *operationPendingRepository) FindByCorrelationID(ctx context.Context, correlationID string) ([]models.PendingOperation, error) {
	if correlationID == "" {
		return nil, nil
	}
	builder := psql.Select(operationColumns...).
		From("operations_pending").
		Where(sq.Or{
			sq.Eq{"correlation_id": correlationID},
			sq.Expr(`id LIKE ? ESCAPE '\'`, "%."+likeEscaper.Replace(correlationID)),
		}).
		OrderBy("created_at ASC")
	return r.find(ctx, builder)
}

func (r *operationPendingRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("operations_pending").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "operationPendingRepository.Delete", id, query, args...)
}

func (r *operationPendingRepository) find(ctx context.Context, builder sq.SelectBuilder) ([]models.PendingOperation, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows []operationRow
	if err = r.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "operationPendingRepository.find").Msg("failed to query pending operations")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	result := make([]models.PendingOperation, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.model())
	}
	return result, nil
}
