package minefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/minefield/internal/config"
)

func TestRegistry_Rebuild(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Enabled())

	n := r.Rebuild([]config.FieldRecord{
		{Border: true, Left: ptr(59), Top: ptr(154), Right: ptr(451), Bottom: ptr(355)},
		{Area: []float64{5, 5, 1, 1}}, // invalid, dropped
		{Area: []float64{0, 0, 10, 10}},
	})

	require.Equal(t, 2, n)
	assert.True(t, r.Enabled())

	fields := r.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, KindBorder, fields[0].Kind())
	assert.Equal(t, KindInner, fields[1].Kind())
}

func TestRegistry_RebuildResetsState(t *testing.T) {
	r := NewRegistry()
	r.Rebuild([]config.FieldRecord{{}})
	r.recordKill()
	r.recordKill()
	require.Equal(t, 2, r.MineKills())

	n := r.Rebuild(nil)

	assert.Zero(t, n)
	assert.False(t, r.Enabled())
	assert.Zero(t, r.MineKills())
	assert.Empty(t, r.Fields())
}

func TestRegistry_AllInvalidDisables(t *testing.T) {
	r := NewRegistry()
	r.Rebuild([]config.FieldRecord{{Area: []float64{1, 1, 1, 1}}, {Area: []float64{1}}})

	assert.False(t, r.Enabled())
}

func TestRegistry_FieldsIsCopy(t *testing.T) {
	r := NewRegistry()
	r.Rebuild([]config.FieldRecord{{}})

	fields := r.Fields()
	fields[0] = NewField(KindBorder, 1, 1, 2, 2, 0)

	assert.Equal(t, KindInner, r.Fields()[0].Kind())
}

func TestFindHit(t *testing.T) {
	t.Run("nil registry", func(t *testing.T) {
		_, ok := FindHit(nil, 1, 1, 1)
		assert.False(t, ok)
	})

	t.Run("empty registry", func(t *testing.T) {
		_, ok := FindHit(NewRegistry(), 1, 1, 1)
		assert.False(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		r := NewRegistry()
		r.Rebuild([]config.FieldRecord{{Area: []float64{0, 0, 10, 10}}})

		_, ok := FindHit(r, 50, 50, 1)
		assert.False(t, ok)
	})

	t.Run("first configured wins", func(t *testing.T) {
		r := NewRegistry()
		r.Rebuild([]config.FieldRecord{
			{Area: []float64{0, 0, 20, 20}, Height: ptr(1)},
			{Area: []float64{0, 0, 10, 10}},
			{Area: []float64{5, 5, 15, 15}},
		})

		f, ok := FindHit(r, 7, 7, 3)
		require.True(t, ok)
		assert.Equal(t, NewField(KindInner, 0, 0, 20, 20, 1), f)

		// below the first field's height only the second one matches
		f, ok = FindHit(r, 7, 7, 0.5)
		require.True(t, ok)
		assert.Equal(t, NewField(KindInner, 0, 0, 10, 10, 0), f)
	})
}

func TestFindHit_ScenarioBorder(t *testing.T) {
	r := NewRegistry()
	r.Rebuild([]config.FieldRecord{
		{Border: true, Left: ptr(59), Top: ptr(154), Right: ptr(451), Bottom: ptr(355)},
	})

	_, ok := FindHit(r, 500, 200, 5)
	assert.True(t, ok, "outside horizontally")

	_, ok = FindHit(r, 100, 200, 5)
	assert.False(t, ok, "inside the fence")
}

func TestFindHit_ScenarioInner(t *testing.T) {
	r := NewRegistry()
	r.Rebuild([]config.FieldRecord{
		{Left: ptr(0), Top: ptr(0), Right: ptr(10), Bottom: ptr(10)},
	})

	_, ok := FindHit(r, 10, 10, 1)
	assert.True(t, ok, "inclusive boundary")

	_, ok = FindHit(r, 11, 5, 1)
	assert.False(t, ok)
}
