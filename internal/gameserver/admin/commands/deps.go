package commands

import (
	"context"

	"github.com/udisondev/minefield/internal/db"
	"github.com/udisondev/minefield/internal/model"
)

// PlayerLister provides the connected players to commands.
// Interface to avoid import cycle with gameserver package.
type PlayerLister interface {
	// ForEachPlayer iterates joined players in id order.
	ForEachPlayer(fn func(*model.Player) bool)
}

// MapChanger switches the running map.
type MapChanger interface {
	CurrentMap() string
	// NextMap returns the rotation entry after the current map.
	NextMap() string
	ChangeMap(name string) error
}

// MineKillStats reads the persisted mine kill log.
type MineKillStats interface {
	CountByMap(ctx context.Context, mapName string) (int, error)
	Recent(ctx context.Context, mapName string, limit int) ([]db.MineKillRow, error)
}

// Notifier delivers a late reply to a player. Used by commands whose
// answer is produced off the event loop.
type Notifier interface {
	NotifyPlayer(p *model.Player, msg string)
}
