// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Threshold is the canonical integer form of a KERI threshold (kt, nt, bt).
//
// On the wire KERI encodes thresholds as lowercase hex strings ("2", "a").
// Some agents return plain JSON numbers and weighted thresholds are lists of
// fractions. All three decode into the number of signatures needed: for a
// weighted list that is the smallest count of the heaviest weights whose sum
// reaches 1. Threshold always encodes back as a hex string.
type Threshold int

// MarshalJSON encodes t as a lowercase hex string.
func (t Threshold) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(t), 16))
}

// UnmarshalJSON accepts a hex string, a number or a weighted list.
func (t *Threshold) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = 0
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseThreshold(s)
		if err != nil {
			return err
		}
		*t = v
		return nil
	case '[':
		weights, err := flattenWeights(b)
		if err != nil {
			return err
		}
		v, err := weightedThreshold(weights)
		if err != nil {
			return err
		}
		*t = v
		return nil
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return fmt.Errorf("invalid threshold %s: %w", b, err)
		}
		*t = Threshold(f)
		return nil
	}
}

// ParseThreshold decodes a hex threshold string. An empty string is zero.
func ParseThreshold(s string) (Threshold, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold %q: %w", s, err)
	}
	return Threshold(v), nil
}

// String returns the hex form used on the wire.
func (t Threshold) String() string {
	return strconv.FormatInt(int64(t), 16)
}

// Int returns t as an int.
func (t Threshold) Int() int {
	return int(t)
}

func flattenWeights(b []byte) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("invalid weighted threshold: %w", err)
	}

	weights := make([]string, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '[' {
			nested, err := flattenWeights(item)
			if err != nil {
				return nil, err
			}
			weights = append(weights, nested...)
			continue
		}

		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, fmt.Errorf("invalid weight %s: %w", item, err)
		}
		weights = append(weights, s)
	}
	return weights, nil
}

func weightedThreshold(weights []string) (Threshold, error) {
	rats := make([]*big.Rat, 0, len(weights))
	for _, w := range weights {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(w))
		if !ok {
			return 0, fmt.Errorf("invalid weight %q", w)
		}
		rats = append(rats, r)
	}

	sort.Slice(rats, func(i, j int) bool { return rats[i].Cmp(rats[j]) > 0 })

	one := big.NewRat(1, 1)
	sum := new(big.Rat)
	for i, r := range rats {
		sum.Add(sum, r)
		if sum.Cmp(one) >= 0 {
			return Threshold(i + 1), nil
		}
	}

	return Threshold(len(rats)), nil
}
