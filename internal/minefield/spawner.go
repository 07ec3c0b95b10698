package minefield

import (
	"log/slog"

	"github.com/udisondev/minefield/internal/gameserver/serverpackets"
	"github.com/udisondev/minefield/internal/model"
)

// MineName tags grenades spawned by minefields. No other feature uses it,
// so death handlers can attribute kills by name.
const MineName = "mine"

// Spawner creates mines in the world and announces them to clients.
type Spawner struct {
	host Host
	fuse float32
}

// NewSpawner creates a spawner with the given fuse in seconds.
func NewSpawner(host Host, fuse float32) *Spawner {
	return &Spawner{host: host, fuse: fuse}
}

// Spawn creates a motionless, environment-owned mine at pos and broadcasts
// it. The world detonates and removes it on its own fuse.
func (s *Spawner) Spawn(pos model.Vec3) *model.Grenade {
	g := s.host.CreateGrenade(model.Grenade{
		Name:     MineName,
		Fuse:     s.fuse,
		Position: pos,
		OwnerID:  model.EnvironmentOwnerID,
	})

	data, err := serverpackets.NewGrenade(g).Write()
	if err != nil {
		slog.Error("serializing mine grenade packet", "error", err)
		return g
	}
	s.host.BroadcastPacket(data)

	slog.Debug("mine spawned",
		"objectID", g.ObjectID,
		"x", pos.X, "y", pos.Y, "z", pos.Z)

	return g
}
