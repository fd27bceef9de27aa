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

var notificationColumns = []string{"id", "route", "said", "connection_id", "is_read", "created_at"}

type notificationRow struct {
	ID           string    `db:"id"`
	Route        string    `db:"route"`
	Said         string    `db:"said"`
	ConnectionID string    `db:"connection_id"`
	Read         bool      `db:"is_read"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r notificationRow) model() models.Notification {
	return models.Notification(r)
}

type notificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewNotificationRepository returns the SQLite [NotificationRepository].
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	return &notificationRepository{DB: db, logger: logger}
}

func (r *notificationRepository) Save(ctx context.Context, n models.Notification) error {
	query, args, err := psql.Insert("notifications").
		Columns(notificationColumns...).
		Values(n.ID, n.Route, n.Said, n.ConnectionID, n.Read, n.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return fmt.Errorf("notification %s: %w", n.ID, ErrRecordAlreadyExists)
		}
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *notificationRepository) Get(ctx context.Context, id string) (models.Notification, error) {
	query, args, err := psql.Select(notificationColumns...).From("notifications").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Notification{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var row notificationRow
	if err = r.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, fmt.Errorf("notification %s: %w", id, ErrRecordNotFound)
		}
		return models.Notification{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return row.model(), nil
}

func (r *notificationRepository) GetAll(ctx context.Context) ([]models.Notification, error) {
	query, args, err := psql.Select(notificationColumns...).From("notifications").OrderBy("created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows []notificationRow
	if err = r.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	result := make([]models.Notification, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.model())
	}
	return result, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("notifications").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "notificationRepository.Delete", id, query, args...)
}
