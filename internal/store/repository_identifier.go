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

var identifierColumns = []string{
	"id", "display_name", "theme", "creation_status", "is_deleted", "pending_deletion", "pending_update",
	"group_id", "group_initiator", "group_created", "group_member_pre", "multisig_manage_aid",
	"created_at", "updated_at",
}

type identifierRow struct {
	ID                string         `db:"id"`
	DisplayName       string         `db:"display_name"`
	Theme             int            `db:"theme"`
	CreationStatus    string         `db:"creation_status"`
	IsDeleted         bool           `db:"is_deleted"`
	PendingDeletion   bool           `db:"pending_deletion"`
	PendingUpdate     bool           `db:"pending_update"`
	GroupID           sql.NullString `db:"group_id"`
	GroupInitiator    sql.NullBool   `db:"group_initiator"`
	GroupCreated      sql.NullBool   `db:"group_created"`
	GroupMemberPre    sql.NullString `db:"group_member_pre"`
	MultisigManageAid sql.NullString `db:"multisig_manage_aid"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func newIdentifierRow(m models.IdentifierMetadata) identifierRow {
	row := identifierRow{
		ID:                m.ID,
		DisplayName:       m.DisplayName,
		Theme:             m.Theme,
		CreationStatus:    string(m.CreationStatus),
		IsDeleted:         m.IsDeleted,
		PendingDeletion:   m.PendingDeletion,
		PendingUpdate:     m.PendingUpdate,
		GroupMemberPre:    nullString(m.GroupMemberPre),
		MultisigManageAid: nullString(m.MultisigManageAid),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.GroupMetadata != nil {
		row.GroupID = nullString(m.GroupMetadata.GroupID)
		row.GroupInitiator = sql.NullBool{Bool: m.GroupMetadata.GroupInitiator, Valid: true}
		row.GroupCreated = sql.NullBool{Bool: m.GroupMetadata.GroupCreated, Valid: true}
	}
	return row
}

func (r identifierRow) model() models.IdentifierMetadata {
	m := models.IdentifierMetadata{
		ID:                r.ID,
		DisplayName:       r.DisplayName,
		Theme:             r.Theme,
		CreationStatus:    models.CreationStatus(r.CreationStatus),
		IsDeleted:         r.IsDeleted,
		PendingDeletion:   r.PendingDeletion,
		PendingUpdate:     r.PendingUpdate,
		GroupMemberPre:    r.GroupMemberPre.String,
		MultisigManageAid: r.MultisigManageAid.String,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.GroupID.Valid {
		m.GroupMetadata = &models.GroupMetadata{
			GroupID:        r.GroupID.String,
			GroupInitiator: r.GroupInitiator.Bool,
			GroupCreated:   r.GroupCreated.Bool,
		}
	}
	return m
}

func (r identifierRow) values() []any {
	return []any{
		r.ID, r.DisplayName, r.Theme, r.CreationStatus, r.IsDeleted, r.PendingDeletion, r.PendingUpdate,
		r.GroupID, r.GroupInitiator, r.GroupCreated, r.GroupMemberPre, r.MultisigManageAid,
		r.CreatedAt, r.UpdatedAt,
	}
}

type identifierRepository struct {
	*DB
	logger *logger.Logger
}

// NewIdentifierRepository returns the SQLite [IdentifierRepository].
func NewIdentifierRepository(db *DB, logger *logger.Logger) IdentifierRepository {
	return &identifierRepository{DB: db, logger: logger}
}

func (r *identifierRepository) Save(ctx context.Context, m models.IdentifierMetadata) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("identifiers").
		Columns(identifierColumns...).
		Values(newIdentifierRow(m).values()...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return fmt.Errorf("identifier %s: %w", m.ID, ErrRecordAlreadyExists)
		}
		log.Err(err).Str("func", "identifierRepository.Save").Str("id", m.ID).Msg("failed to insert identifier")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *identifierRepository) Get(ctx context.Context, id string) (models.IdentifierMetadata, error) {
	query, args, err := psql.Select(identifierColumns...).From("identifiers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.IdentifierMetadata{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var row identifierRow
	if err = r.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.IdentifierMetadata{}, fmt.Errorf("identifier %s: %w", id, ErrRecordNotFound)
		}
		logger.FromContext(ctx).Err(err).Str("func", "identifierRepository.Get").Str("id", id).Msg("failed to query identifier")
		return models.IdentifierMetadata{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return row.model(), nil
}

func (r *identifierRepository) Update(ctx context.Context, m models.IdentifierMetadata) error {
	row := newIdentifierRow(m)
	query, args, err := psql.Update("identifiers").
		SetMap(map[string]any{
			"display_name":        row.DisplayName,
			"theme":               row.Theme,
			"creation_status":     row.CreationStatus,
			"is_deleted":          row.IsDeleted,
			"pending_deletion":    row.PendingDeletion,
			"pending_update":      row.PendingUpdate,
			"group_id":            row.GroupID,
			"group_initiator":     row.GroupInitiator,
			"group_created":       row.GroupCreated,
			"group_member_pre":    row.GroupMemberPre,
			"multisig_manage_aid": row.MultisigManageAid,
			"updated_at":          time.Now().UTC(),
		}).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "identifierRepository.Update", m.ID, query, args...)
}

func (r *identifierRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("identifiers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "identifierRepository.Delete", id, query, args...)
}

func (r *identifierRepository) Find(ctx context.Context, filter models.IdentifierFilter) ([]models.IdentifierMetadata, error) {
	builder := psql.Select(identifierColumns...).From("identifiers").OrderBy("created_at ASC")

	if filter.GroupID != "" {
		builder = builder.Where(sq.Eq{"group_id": filter.GroupID})
	}
	if filter.CreationStatus != "" {
		builder = builder.Where(sq.Eq{"creation_status": string(filter.CreationStatus)})
	}
	if filter.PendingDeletion != nil {
		builder = builder.Where(sq.Eq{"pending_deletion": *filter.PendingDeletion})
	}
	if filter.PendingUpdate != nil {
		builder = builder.Where(sq.Eq{"pending_update": *filter.PendingUpdate})
	}
	if filter.IsDeleted != nil {
		builder = builder.Where(sq.Eq{"is_deleted": *filter.IsDeleted})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var rows []identifierRow
	if err = r.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "identifierRepository.Find").Msg("failed to query identifiers")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	result := make([]models.IdentifierMetadata, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.model())
	}
	return result, nil
}

// execAffectingOne runs a DML statement that must touch exactly the record id.
func (db *DB) execAffectingOne(ctx context.Context, funcName, id, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Str("id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", id, ErrRecordNotFound)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
