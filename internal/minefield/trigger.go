package minefield

import (
	"log/slog"
	"math"
	"time"

	"github.com/udisondev/minefield/internal/model"
)

// Probe offsets relative to the block under the player's feet.
const (
	probeHorizontal = 0.5
	probeStanding   = 3.5
	probeCrouching  = 2.5
)

// Trigger checks probe against the registry. On a hit it schedules a mine
// spawn after delay and returns true. With spawnUp the mine is placed one
// unit lower than the probe to undo the raised movement probe.
//
// Scheduled spawns cannot be cancelled. A spawn whose player has
// disconnected by the time it fires is dropped.
func (pl *Plugin) Trigger(p *model.Player, probe model.Vec3, delay time.Duration, spawnUp bool) bool {
	f, ok := FindHit(pl.registry, float64(probe.X), float64(probe.Y), float64(probe.Z))
	if !ok {
		return false
	}

	pos := probe
	if spawnUp {
		pos.Z--
	}

	slog.Debug("minefield tripped",
		"player", p.Name(),
		"field", f.String(),
		"x", probe.X, "y", probe.Y, "z", probe.Z)

	pl.host.CallLater(delay, func() {
		if !p.IsConnected() {
			slog.Debug("mine trigger dropped, player gone", "player", p.Name())
			return
		}
		pl.spawner.Spawn(pos)
	})
	return true
}

// CheckMovement probes under the player's current position.
func (pl *Plugin) CheckMovement(p *model.Player) bool {
	if !pl.registry.Enabled() {
		return false
	}
	return pl.Trigger(p, MovementProbe(p.Position(), p.IsCrouching()), pl.cfg.TriggerDelay, true)
}

// CheckDestroy probes the center of a destroyed block when the block is
// close enough to the acting player. Only regular and spade destruction count.
func (pl *Plugin) CheckDestroy(p *model.Player, x, y, z int, mode model.BlockAction) bool {
	if !pl.registry.Enabled() {
		return false
	}
	if mode != model.DestroyBlock && mode != model.SpadeDestroy {
		return false
	}

	block := model.NewVec3(float32(x), float32(y), float32(z))
	if !block.Near(p.Position(), pl.cfg.DestroyRadius) {
		return false
	}
	return pl.Trigger(p, block.Add(0.5, 0.5, 0.5), pl.cfg.TriggerDelay, false)
}

// MovementProbe returns the movement probe point for a player at pos.
func MovementProbe(pos model.Vec3, crouching bool) model.Vec3 {
	dz := float32(probeStanding)
	if crouching {
		dz = probeCrouching
	}
	return model.NewVec3(
		float32(math.Floor(float64(pos.X)))+probeHorizontal,
		float32(math.Floor(float64(pos.Y)))+probeHorizontal,
		float32(math.Floor(float64(pos.Z)))+dz,
	)
}
