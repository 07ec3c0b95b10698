package minefield

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/udisondev/minefield/internal/config"
	"github.com/udisondev/minefield/internal/event"
	"github.com/udisondev/minefield/internal/model"
)

// Host is the server session as seen by the plugin.
// All methods are called from the event loop goroutine.
type Host interface {
	// CallLater runs fn on the event loop after delay, never synchronously.
	CallLater(delay time.Duration, fn func())
	// CreateGrenade registers g in the world; the world detonates and
	// removes it when the fuse expires.
	CreateGrenade(g model.Grenade) *model.Grenade
	BroadcastPacket(data []byte)
	BroadcastChat(msg string)
	// TextLists exposes the session's tips, motd and help lists.
	TextLists() (tips, motd, help *[]string)
}

// KillRecorder persists attributed mine kills.
type KillRecorder interface {
	RecordMineKill(mapName, victim string, killNumber int)
}

// Plugin attaches minefield behaviour to one server session.
type Plugin struct {
	cfg      config.Minefield
	host     Host
	registry *Registry
	spawner  *Spawner
	messages []string
	recorder KillRecorder
	mapName  string

	pick func(n int) int
}

// New creates a plugin for host. The registry starts disabled until the
// first map change.
func New(host Host, cfg config.Minefield) *Plugin {
	messages := cfg.KillMessages
	if len(messages) == 0 {
		messages = DefaultKillMessages
	}
	return &Plugin{
		cfg:      cfg,
		host:     host,
		registry: NewRegistry(),
		spawner:  NewSpawner(host, cfg.Fuse),
		messages: messages,
		pick:     rand.IntN,
	}
}

// SetRecorder sets the mine kill sink. Nil disables recording.
func (pl *Plugin) SetRecorder(r KillRecorder) {
	pl.recorder = r
}

// Registry returns the session's field registry.
func (pl *Plugin) Registry() *Registry {
	return pl.registry
}

// Install registers the plugin on every hook chain. Each handler runs its
// own logic and then calls through to the next one.
func (pl *Plugin) Install(h *event.Hooks) {
	h.UseMovement(func(next event.MovementHandler) event.MovementHandler {
		return func(p *model.Player) {
			pl.CheckMovement(p)
			next(p)
		}
	})

	h.UseDestroy(func(next event.DestroyHandler) event.DestroyHandler {
		return func(p *model.Player, x, y, z int, mode model.BlockAction) bool {
			pl.CheckDestroy(p, x, y, z, mode)
			return next(p, x, y, z, mode)
		}
	})

	h.UseDeath(func(next event.DeathHandler) event.DeathHandler {
		return func(victim, killer *model.Player, cause model.KillType, grenade *model.Grenade) {
			pl.OnDeath(victim, grenade)
			next(victim, killer, cause, grenade)
		}
	})

	h.UseMapChange(func(next event.MapChangeHandler) event.MapChangeHandler {
		return func(info config.MapInfo) {
			pl.OnMapChange(info)
			next(info)
		}
	})

	h.UseFormat(func(next event.FormatHandler) event.FormatHandler {
		return func() {
			pl.SyncHints()
			next()
		}
	})
}

// OnMapChange rebuilds the registry from the new map's records and resets
// the kill counter.
func (pl *Plugin) OnMapChange(info config.MapInfo) {
	pl.mapName = info.Name

	records := info.Extensions.Minefields
	n := pl.registry.Rebuild(records)
	for _, f := range pl.registry.fields {
		slog.Debug("minefield loaded", "map", info.Name, "field", f.String(), "height", f.Height())
	}

	slog.Info("minefields rebuilt",
		"map", info.Name,
		"fields", n,
		"rejected", len(records)-n)
}

// SyncHints adds or removes the hint strings on the host's text lists.
func (pl *Plugin) SyncHints() {
	tips, motd, help := pl.host.TextLists()
	SyncHints(pl.registry.Enabled(), tips, motd, help)
}
