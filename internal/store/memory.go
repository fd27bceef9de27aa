// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// memoryTable is a mutex-guarded map keyed by record id.
type memoryTable[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	name  string
}

func newMemoryTable[T any](name string) *memoryTable[T] {
	return &memoryTable[T]{items: make(map[string]T), name: name}
}

func (t *memoryTable[T]) insert(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[id]; ok {
		return fmt.Errorf("%s %s: %w", t.name, id, ErrRecordAlreadyExists)
	}
	t.items[id] = v
	return nil
}

func (t *memoryTable[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.items[id]
	if !ok {
		return v, fmt.Errorf("%s %s: %w", t.name, id, ErrRecordNotFound)
	}
	return v, nil
}

func (t *memoryTable[T]) replace(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[id]; !ok {
		return fmt.Errorf("%s %s: %w", t.name, id, ErrRecordNotFound)
	}
	t.items[id] = v
	return nil
}

func (t *memoryTable[T]) remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[id]; !ok {
		return fmt.Errorf("%s %s: %w", t.name, id, ErrRecordNotFound)
	}
	delete(t.items, id)
	return nil
}

// filter returns matching values ordered by id for stable output.
func (t *memoryTable[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := maps.Keys(t.items)
	sort.Strings(ids)

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		if v := t.items[id]; match(v) {
			result = append(result, v)
		}
	}
	return result
}

func sortByCreatedAt[T any](items []T, createdAt func(T) time.Time) []T {
	sort.SliceStable(items, func(i, j int) bool { return createdAt(items[i]).Before(createdAt(items[j])) })
	return items
}

type memoryIdentifierRepository struct {
	table *memoryTable[models.IdentifierMetadata]
}

// NewMemoryIdentifierRepository returns an in-memory [IdentifierRepository].
func NewMemoryIdentifierRepository() IdentifierRepository {
	return &memoryIdentifierRepository{table: newMemoryTable[models.IdentifierMetadata]("identifier")}
}

func (r *memoryIdentifierRepository) Save(_ context.Context, m models.IdentifierMetadata) error {
	return r.table.insert(m.ID, cloneIdentifier(m))
}

func (r *memoryIdentifierRepository) Get(_ context.Context, id string) (models.IdentifierMetadata, error) {
	m, err := r.table.get(id)
	return cloneIdentifier(m), err
}

func (r *memoryIdentifierRepository) Update(_ context.Context, m models.IdentifierMetadata) error {
	m.UpdatedAt = time.Now().UTC()
	return r.table.replace(m.ID, cloneIdentifier(m))
}

func (r *memoryIdentifierRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryIdentifierRepository) Find(_ context.Context, f models.IdentifierFilter) ([]models.IdentifierMetadata, error) {
	items := r.table.filter(func(m models.IdentifierMetadata) bool {
		if f.GroupID != "" && (m.GroupMetadata == nil || m.GroupMetadata.GroupID != f.GroupID) {
			return false
		}
		if f.CreationStatus != "" && m.CreationStatus != f.CreationStatus {
			return false
		}
		if f.PendingDeletion != nil && m.PendingDeletion != *f.PendingDeletion {
			return false
		}
		if f.PendingUpdate != nil && m.PendingUpdate != *f.PendingUpdate {
			return false
		}
		if f.IsDeleted != nil && m.IsDeleted != *f.IsDeleted {
			return false
		}
		return true
	})
	for i := range items {
		items[i] = cloneIdentifier(items[i])
	}
	return sortByCreatedAt(items, func(m models.IdentifierMetadata) time.Time { return m.CreatedAt }), nil
}

func cloneIdentifier(m models.IdentifierMetadata) models.IdentifierMetadata {
	if m.GroupMetadata != nil {
		gm := *m.GroupMetadata
		m.GroupMetadata = &gm
	}
	return m
}

type memoryContactRepository struct {
	table *memoryTable[models.Contact]
}

// NewMemoryContactRepository returns an in-memory [ContactRepository].
func NewMemoryContactRepository() ContactRepository {
	return &memoryContactRepository{table: newMemoryTable[models.Contact]("contact")}
}

func (r *memoryContactRepository) Save(_ context.Context, c models.Contact) error {
	return r.table.insert(c.ID, c)
}

func (r *memoryContactRepository) Get(_ context.Context, id string) (models.Contact, error) {
	return r.table.get(id)
}

func (r *memoryContactRepository) Update(_ context.Context, c models.Contact) error {
	return r.table.replace(c.ID, c)
}

func (r *memoryContactRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryContactRepository) GetAll(_ context.Context) ([]models.Contact, error) {
	items := r.table.filter(func(models.Contact) bool { return true })
	return sortByCreatedAt(items, func(c models.Contact) time.Time { return c.CreatedAt }), nil
}

func (r *memoryContactRepository) FindByGroupID(_ context.Context, groupID string) ([]models.Contact, error) {
	items := r.table.filter(func(c models.Contact) bool { return c.GroupID == groupID })
	return sortByCreatedAt(items, func(c models.Contact) time.Time { return c.CreatedAt }), nil
}

type memoryConnectionPairRepository struct {
	table *memoryTable[models.ConnectionPair]
}

// NewMemoryConnectionPairRepository returns an in-memory [ConnectionPairRepository].
func NewMemoryConnectionPairRepository() ConnectionPairRepository {
	return &memoryConnectionPairRepository{table: newMemoryTable[models.ConnectionPair]("connection pair")}
}

func (r *memoryConnectionPairRepository) Save(_ context.Context, p models.ConnectionPair) error {
	return r.table.insert(p.ID, p)
}

func (r *memoryConnectionPairRepository) Get(_ context.Context, id string) (models.ConnectionPair, error) {
	return r.table.get(id)
}

func (r *memoryConnectionPairRepository) Update(_ context.Context, p models.ConnectionPair) error {
	return r.table.replace(p.ID, p)
}

func (r *memoryConnectionPairRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryConnectionPairRepository) Find(_ context.Context, f models.ConnectionPairFilter) ([]models.ConnectionPair, error) {
	items := r.table.filter(func(p models.ConnectionPair) bool {
		if f.ContactID != "" && p.ContactID != f.ContactID {
			return false
		}
		if f.Identifier != "" && p.Identifier != f.Identifier {
			return false
		}
		if f.CreationStatus != "" && p.CreationStatus != f.CreationStatus {
			return false
		}
		if f.PendingDeletion != nil && p.PendingDeletion != *f.PendingDeletion {
			return false
		}
		return true
	})
	return sortByCreatedAt(items, func(p models.ConnectionPair) time.Time { return p.CreatedAt }), nil
}

type memoryOperationPendingRepository struct {
	table *memoryTable[models.PendingOperation]
}

// NewMemoryOperationPendingRepository returns an in-memory [OperationPendingRepository].
func NewMemoryOperationPendingRepository() OperationPendingRepository {
	return &memoryOperationPendingRepository{table: newMemoryTable[models.PendingOperation]("pending operation")}
}

func (r *memoryOperationPendingRepository) Save(_ context.Context, op models.PendingOperation) error {
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}
	return r.table.insert(op.ID, op)
}

func (r *memoryOperationPendingRepository) Get(_ context.Context, id string) (models.PendingOperation, error) {
	return r.table.get(id)
}

func (r *memoryOperationPendingRepository) GetAll(_ context.Context) ([]models.PendingOperation, error) {
	items := r.table.filter(func(models.PendingOperation) bool { return true })
	return sortByCreatedAt(items, func(o models.PendingOperation) time.Time { return o.CreatedAt }), nil
}

func (r *memoryOperationPendingRepository) FindByCorrelationID(_ context.Context, correlationID string) ([]models.PendingOperation, error) {
	items := r.table.filter(func(o models.PendingOperation) bool { return o.CorrelatesWith(correlationID) })
	return sortByCreatedAt(items, func(o models.PendingOperation) time.Time { return o.CreatedAt }), nil
}

func (r *memoryOperationPendingRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

type memoryBasicRepository struct {
	table *memoryTable[models.BasicRecord]
	locks keyedMutex
}

// NewMemoryBasicRepository returns an in-memory [BasicRepository].
func NewMemoryBasicRepository() BasicRepository {
	return &memoryBasicRepository{table: newMemoryTable[models.BasicRecord]("basic record")}
}

func (r *memoryBasicRepository) Get(_ context.Context, id models.MiscRecordID) (models.BasicRecord, error) {
	return r.table.get(string(id))
}

func (r *memoryBasicRepository) Save(_ context.Context, record models.BasicRecord) error {
	r.table.mu.Lock()
	defer r.table.mu.Unlock()

	if prev, ok := r.table.items[string(record.ID)]; ok && !prev.CreatedAt.IsZero() {
		record.CreatedAt = prev.CreatedAt
	}
	record.Content = append(json.RawMessage(nil), record.Content...)
	r.table.items[string(record.ID)] = record
	return nil
}

func (r *memoryBasicRepository) Delete(_ context.Context, id models.MiscRecordID) error {
	return r.table.remove(string(id))
}

func (r *memoryBasicRepository) Mutate(ctx context.Context, id models.MiscRecordID, fn func(content json.RawMessage) (json.RawMessage, error)) error {
	unlock := r.locks.lock(string(id))
	defer unlock()

	var current json.RawMessage
	if record, err := r.table.get(string(id)); err == nil {
		current = record.Content
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.Save(ctx, models.BasicRecord{ID: id, Content: next, CreatedAt: now, UpdatedAt: now})
}

type memoryNotificationRepository struct {
	table *memoryTable[models.Notification]
}

// NewMemoryNotificationRepository returns an in-memory [NotificationRepository].
func NewMemoryNotificationRepository() NotificationRepository {
	return &memoryNotificationRepository{table: newMemoryTable[models.Notification]("notification")}
}

func (r *memoryNotificationRepository) Save(_ context.Context, n models.Notification) error {
	return r.table.insert(n.ID, n)
}

func (r *memoryNotificationRepository) Get(_ context.Context, id string) (models.Notification, error) {
	return r.table.get(id)
}

func (r *memoryNotificationRepository) GetAll(_ context.Context) ([]models.Notification, error) {
	items := r.table.filter(func(models.Notification) bool { return true })
	return sortByCreatedAt(items, func(n models.Notification) time.Time { return n.CreatedAt }), nil
}

func (r *memoryNotificationRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

type memoryCredentialRepository struct {
	table *memoryTable[models.CredentialMetadata]
}

// NewMemoryCredentialRepository returns an in-memory [CredentialRepository].
func NewMemoryCredentialRepository() CredentialRepository {
	return &memoryCredentialRepository{table: newMemoryTable[models.CredentialMetadata]("credential")}
}

func (r *memoryCredentialRepository) Save(_ context.Context, c models.CredentialMetadata) error {
	return r.table.insert(c.ID, c)
}

func (r *memoryCredentialRepository) Get(_ context.Context, id string) (models.CredentialMetadata, error) {
	return r.table.get(id)
}

func (r *memoryCredentialRepository) Update(_ context.Context, c models.CredentialMetadata) error {
	return r.table.replace(c.ID, c)
}

func (r *memoryCredentialRepository) Delete(_ context.Context, id string) error {
	return r.table.remove(id)
}

func (r *memoryCredentialRepository) FindPendingDeletion(_ context.Context) ([]models.CredentialMetadata, error) {
	items := r.table.filter(func(c models.CredentialMetadata) bool { return c.PendingDeletion })
	return sortByCreatedAt(items, func(c models.CredentialMetadata) time.Time { return c.CreatedAt }), nil
}

// isMemoryDSN reports whether dsn asks for a non-persistent store.
func isMemoryDSN(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	return dsn == "" || dsn == ":memory:" || dsn == "memory"
}
