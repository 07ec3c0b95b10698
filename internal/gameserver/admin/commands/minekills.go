package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/udisondev/minefield/internal/gameserver/admin"
	"github.com/udisondev/minefield/internal/model"
)

const (
	mineKillsRecent  = 5
	mineKillsTimeout = 3 * time.Second
)

// MineKills handles /minekills [map]: total and latest mine kills logged
// for a map, the current one by default. The query runs off the event loop
// and the answer arrives through the Notifier.
type MineKills struct {
	stats  MineKillStats
	maps   MapChanger
	notify Notifier
}

// NewMineKills creates the minekills command.
func NewMineKills(stats MineKillStats, maps MapChanger, notify Notifier) *MineKills {
	return &MineKills{stats: stats, maps: maps, notify: notify}
}

func (c *MineKills) Names() []string      { return []string{"minekills"} }
func (c *MineKills) RequiredRole() string { return admin.RoleAdmin }

func (c *MineKills) Handle(player *model.Player, args []string) (string, error) {
	mapName := c.maps.CurrentMap()
	if len(args) >= 2 {
		mapName = args[1]
	}
	if mapName == "" {
		return "Usage: /minekills <map>", nil
	}

	go func() {
		c.notify.NotifyPlayer(player, c.report(mapName))
	}()
	return "", nil
}

func (c *MineKills) report(mapName string) string {
	ctx, cancel := context.WithTimeout(context.Background(), mineKillsTimeout)
	defer cancel()

	total, err := c.stats.CountByMap(ctx, mapName)
	if err != nil {
		slog.Error("mine kill count failed", "map", mapName, "error", err)
		return "Mine kill stats unavailable"
	}
	recent, err := c.stats.Recent(ctx, mapName, mineKillsRecent)
	if err != nil {
		slog.Error("recent mine kills failed", "map", mapName, "error", err)
		return "Mine kill stats unavailable"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mine kills on %s: %d\n", mapName, total)
	for _, row := range recent {
		fmt.Fprintf(&b, "#%d %s %s\n", row.KillNumber, row.Victim, row.KilledAt.UTC().Format(time.DateTime))
	}
	return b.String()
}
