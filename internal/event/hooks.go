package event

import (
	"github.com/udisondev/minefield/internal/config"
	"github.com/udisondev/minefield/internal/model"
)

// MovementHandler handles a position update of p.
type MovementHandler func(p *model.Player)

// DestroyHandler handles a block action that removes terrain at (x, y, z).
// Returns whether the destruction is accepted.
type DestroyHandler func(p *model.Player, x, y, z int, mode model.BlockAction) bool

// DeathHandler handles the death of victim. killer may equal victim for
// environment kills; grenade is the explosive that caused the death or nil.
type DeathHandler func(victim, killer *model.Player, cause model.KillType, grenade *model.Grenade)

// MapChangeHandler runs after a new map is loaded and before any player
// event for that map is dispatched.
type MapChangeHandler func(info config.MapInfo)

// FormatHandler refreshes player-facing text lists (tips, motd, help).
type FormatHandler func()

// Hooks holds one handler chain per event type.
// Each Use* call wraps the current chain: the middleware receives the
// previously installed handler as next and decides when to call it.
// The innermost handler is the session's own behaviour passed to NewHooks.
// Registration happens at startup before the loop runs; dispatch happens on
// the loop goroutine.
type Hooks struct {
	movement  MovementHandler
	destroy   DestroyHandler
	death     DeathHandler
	mapChange MapChangeHandler
	format    FormatHandler
}

// Base is the terminal handler set. Nil entries become no-ops.
type Base struct {
	Movement  MovementHandler
	Destroy   DestroyHandler
	Death     DeathHandler
	MapChange MapChangeHandler
	Format    FormatHandler
}

// NewHooks creates hook chains ending in base.
func NewHooks(base Base) *Hooks {
	h := &Hooks{
		movement:  base.Movement,
		destroy:   base.Destroy,
		death:     base.Death,
		mapChange: base.MapChange,
		format:    base.Format,
	}
	if h.movement == nil {
		h.movement = func(*model.Player) {}
	}
	if h.destroy == nil {
		h.destroy = func(*model.Player, int, int, int, model.BlockAction) bool { return true }
	}
	if h.death == nil {
		h.death = func(*model.Player, *model.Player, model.KillType, *model.Grenade) {}
	}
	if h.mapChange == nil {
		h.mapChange = func(config.MapInfo) {}
	}
	if h.format == nil {
		h.format = func() {}
	}
	return h
}

// UseMovement wraps the movement chain.
func (h *Hooks) UseMovement(mw func(next MovementHandler) MovementHandler) {
	h.movement = mw(h.movement)
}

// UseDestroy wraps the block destroy chain.
func (h *Hooks) UseDestroy(mw func(next DestroyHandler) DestroyHandler) {
	h.destroy = mw(h.destroy)
}

// UseDeath wraps the death chain.
func (h *Hooks) UseDeath(mw func(next DeathHandler) DeathHandler) {
	h.death = mw(h.death)
}

// UseMapChange wraps the map change chain.
func (h *Hooks) UseMapChange(mw func(next MapChangeHandler) MapChangeHandler) {
	h.mapChange = mw(h.mapChange)
}

// UseFormat wraps the format refresh chain.
func (h *Hooks) UseFormat(mw func(next FormatHandler) FormatHandler) {
	h.format = mw(h.format)
}

// Movement dispatches a position update.
func (h *Hooks) Movement(p *model.Player) { h.movement(p) }

// Destroy dispatches a block destruction and returns the chain's verdict.
func (h *Hooks) Destroy(p *model.Player, x, y, z int, mode model.BlockAction) bool {
	return h.destroy(p, x, y, z, mode)
}

// Death dispatches a player death.
func (h *Hooks) Death(victim, killer *model.Player, cause model.KillType, grenade *model.Grenade) {
	h.death(victim, killer, cause, grenade)
}

// MapChange dispatches a map change.
func (h *Hooks) MapChange(info config.MapInfo) { h.mapChange(info) }

// Format dispatches a format refresh.
func (h *Hooks) Format() { h.format() }
