// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// GetContent decodes the document stored under id into T. A missing record
// yields the zero T.
func GetContent[T any](ctx context.Context, repo BasicRepository, id models.MiscRecordID) (T, error) {
	var content T

	record, err := repo.Get(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return content, nil
	}
	if err != nil {
		return content, err
	}

	if len(record.Content) == 0 {
		return content, nil
	}
	if err = json.Unmarshal(record.Content, &content); err != nil {
		return content, fmt.Errorf("%w %s: %v", ErrDecodingRecord, id, err)
	}
	return content, nil
}

// PutContent stores v as the document under id.
func PutContent[T any](ctx context.Context, repo BasicRepository, id models.MiscRecordID, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", id, err)
	}
	now := time.Now().UTC()
	return repo.Save(ctx, models.BasicRecord{ID: id, Content: raw, CreatedAt: now, UpdatedAt: now})
}

// MutateContent runs fn on the decoded document under id inside
// [BasicRepository.Mutate], so read-modify-write of queues never loses an
// update.
func MutateContent[T any](ctx context.Context, repo BasicRepository, id models.MiscRecordID, fn func(*T) error) error {
	return repo.Mutate(ctx, id, func(raw json.RawMessage) (json.RawMessage, error) {
		var content T
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &content); err != nil {
				return nil, fmt.Errorf("%w %s: %v", ErrDecodingRecord, id, err)
			}
		}

		if err := fn(&content); err != nil {
			return nil, err
		}

		return json.Marshal(content)
	})
}
