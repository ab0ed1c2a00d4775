package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpsertSlot(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3*3600))

	query, args, err := buildUpsertSlot("token", "abc", at)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO kv_slots (key,value,updated_at) VALUES (?,?,?) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		query)
	require.Len(t, args, 3)
	assert.Equal(t, "token", args[0])
	assert.Equal(t, "abc", args[1])
	assert.Equal(t, at.UTC(), args[2])
}

func TestBuildSelectSlot(t *testing.T) {
	query, args, err := buildSelectSlot("token")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM kv_slots WHERE key = ?", query)
	assert.Equal(t, []any{"token"}, args)
}

func TestBuildDeleteSlot(t *testing.T) {
	query, args, err := buildDeleteSlot("token")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM kv_slots WHERE key = ?", query)
	assert.Equal(t, []any{"token"}, args)
}
