// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvSlotsTable = "kv_slots"

	// tokenSlotKey is the kv_slots key of the session token.
	tokenSlotKey = "token"
)

// sqlite understands "?" placeholders
var kvSQL = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertSlot(key, value string, at time.Time) (string, []any, error) {
	return kvSQL.
		Insert(kvSlotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectSlot(key string) (string, []any, error) {
	return kvSQL.
		Select("value").
		From(kvSlotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildDeleteSlot(key string) (string, []any, error) {
	return kvSQL.
		Delete(kvSlotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
