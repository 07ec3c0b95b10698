package minefield

import (
	"log/slog"

	"github.com/udisondev/minefield/internal/model"
)

// IsMine reports whether g was spawned by a minefield.
func IsMine(g *model.Grenade) bool {
	return g != nil && g.Name == MineName
}

// OnDeath attributes a death to the minefield when grenade is a mine:
// bumps the kill counter and broadcasts a random flavor message.
// Returns whether the death was attributed.
func (pl *Plugin) OnDeath(victim *model.Player, grenade *model.Grenade) bool {
	if !IsMine(grenade) {
		return false
	}

	kills := pl.registry.recordKill()
	tmpl := pl.messages[pl.pick(len(pl.messages))]
	pl.host.BroadcastChat(FormatKillMessage(tmpl, victim.Name(), kills))

	slog.Info("mine kill",
		"map", pl.mapName,
		"victim", victim.Name(),
		"mineKills", kills)

	if pl.recorder != nil {
		pl.recorder.RecordMineKill(pl.mapName, victim.Name(), kills)
	}
	return true
}
