package gameserver

import "github.com/udisondev/minefield/internal/model"

// World tracks live grenades of the current map.
// Owned by the event loop; not safe for concurrent use.
type World struct {
	grenades map[uint32]*model.Grenade
	nextID   uint32
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{grenades: make(map[uint32]*model.Grenade)}
}

// Add stores a copy of g under a fresh object id.
func (w *World) Add(g model.Grenade) *model.Grenade {
	w.nextID++
	g.ObjectID = w.nextID
	w.grenades[g.ObjectID] = &g
	return &g
}

// Remove takes the grenade out of the world.
// Returns false when it is already gone (detonated or cleared by a map change).
func (w *World) Remove(id uint32) (*model.Grenade, bool) {
	g, ok := w.grenades[id]
	if ok {
		delete(w.grenades, id)
	}
	return g, ok
}

// Count returns the number of live grenades.
func (w *World) Count() int {
	return len(w.grenades)
}

// Reset drops every live grenade. Pending detonations become no-ops.
func (w *World) Reset() {
	clear(w.grenades)
}
