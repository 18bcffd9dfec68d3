package session

import (
	"testing"
	"time"

	"reviewer/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("GetOrCreate creates once per RID", func(t *testing.T) {
		registry := NewRegistry(0, nil)
		rid := uuid.New()

		first := registry.GetOrCreate(rid)
		second := registry.GetOrCreate(rid)

		assert.Same(t, first, second)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("Sessions are isolated per RID", func(t *testing.T) {
		registry := NewRegistry(0, nil)

		a := registry.GetOrCreate(uuid.New())
		b := registry.GetOrCreate(uuid.New())

		a.Reviews.Mark(1)
		assert.False(t, b.Reviews.Contains(1))
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("Get does not create", func(t *testing.T) {
		registry := NewRegistry(0, nil)

		_, ok := registry.Get(uuid.New())
		assert.False(t, ok)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("Idle sessions are pruned on access", func(t *testing.T) {
		registry := NewRegistry(time.Millisecond, nil)

		stale := registry.GetOrCreate(uuid.New())
		stale.LastActive = time.Now().Add(-time.Minute)

		registry.GetOrCreate(uuid.New())
		assert.Equal(t, 1, registry.Len())

		_, ok := registry.Get(stale.RID)
		assert.False(t, ok)
	})

	t.Run("Delete removes a session", func(t *testing.T) {
		registry := NewRegistry(0, nil)
		rid := uuid.New()
		registry.GetOrCreate(rid)

		registry.Delete(rid)
		_, ok := registry.Get(rid)
		assert.False(t, ok)
	})
}

func TestSessionLoadTable(t *testing.T) {
	s := NewSession(uuid.New())
	assert.False(t, s.HasTable())

	table := &model.Table{Columns: []string{"language"}, ScoreIndex: -1, Records: []*model.Record{{ID: 0}}}
	s.LoadTable(table, "first.csv", []string{"warning"})

	require.True(t, s.HasTable())
	assert.Equal(t, "first.csv", s.Source)
	assert.Equal(t, []string{"warning"}, s.Warnings)

	s.Reviews.Mark(0)
	require.True(t, s.Reviews.Contains(0))

	// A new load replaces everything, review marks do not survive
	s.LoadTable(table, "second.csv", nil)
	assert.Equal(t, "second.csv", s.Source)
	assert.False(t, s.Reviews.Contains(0))
	assert.Equal(t, 0, s.Reviews.Len())
}
