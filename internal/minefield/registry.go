package minefield

import (
	"slices"

	"github.com/udisondev/minefield/internal/config"
)

// Registry holds the active fields of the currently loaded map and the
// per-map mine kill counter. One Registry belongs to one server session.
// Not safe for concurrent use: the session mutates it from its event loop only.
type Registry struct {
	fields    []Field
	enabled   bool
	mineKills int
}

// NewRegistry creates an empty, disabled registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Rebuild discards the current fields and parses records in order.
// Invalid records are skipped. Resets the kill counter.
// Returns the number of accepted fields.
func (r *Registry) Rebuild(records []config.FieldRecord) int {
	r.fields = r.fields[:0]
	r.mineKills = 0

	for _, rec := range records {
		if f, ok := Parse(rec); ok {
			r.fields = append(r.fields, f)
		}
	}

	r.enabled = len(r.fields) > 0
	return len(r.fields)
}

// Fields returns a copy of the active fields in configuration order.
func (r *Registry) Fields() []Field {
	return slices.Clone(r.fields)
}

// Enabled reports whether the current map has at least one field.
func (r *Registry) Enabled() bool {
	return r.enabled
}

// MineKills returns deaths attributed to mines since the last map change.
func (r *Registry) MineKills() int {
	return r.mineKills
}

// recordKill increments the kill counter and returns the new value.
func (r *Registry) recordKill() int {
	r.mineKills++
	return r.mineKills
}
