package gameserver

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/udisondev/minefield/internal/config"
	"github.com/udisondev/minefield/internal/gameserver/serverpackets"
	"github.com/udisondev/minefield/internal/model"
)

// CurrentMap returns the loaded map name, or "" before the first load.
func (s *Server) CurrentMap() string {
	return s.mapInfo.Name
}

// MapInfo returns the loaded map's metadata.
func (s *Server) MapInfo() config.MapInfo {
	return s.mapInfo
}

// NextMap returns the rotation entry after the current one.
func (s *Server) NextMap() string {
	if len(s.cfg.Maps) == 0 {
		return s.mapInfo.Name
	}
	return s.cfg.Maps[(s.mapIndex+1)%len(s.cfg.Maps)]
}

// ChangeMap loads <maps_dir>/<name>.yaml, dispatches the map change chain
// and refreshes the text lists. On error the previous map stays active.
func (s *Server) ChangeMap(name string) error {
	info, err := config.LoadMapInfo(s.cfg.MapsDir, name)
	if err != nil {
		slog.Error("map change failed", "map", name, "error", err)
		return fmt.Errorf("loading map %s: %w", name, err)
	}

	if i := slices.Index(s.cfg.Maps, name); i >= 0 {
		s.mapIndex = i
	}

	s.hooks.MapChange(info)
	s.UpdateFormat()
	return nil
}

// onMapChange is the terminal map change handler.
func (s *Server) onMapChange(info config.MapInfo) {
	previous := s.mapInfo.Name
	s.mapInfo = info
	s.world.Reset()

	slog.Info("map loaded", "map", info.Name, "author", info.Author, "previous", previous)

	if previous != "" {
		s.BroadcastChat(fmt.Sprintf("Map changed to %s", info.Name))
	}
}

// UpdateFormat dispatches the format refresh chain.
func (s *Server) UpdateFormat() {
	s.hooks.Format()
}

// TextLists exposes tips, motd and help for in-place updates.
func (s *Server) TextLists() (tips, motd, help *[]string) {
	return &s.tips, &s.motd, &s.help
}

// Tips returns a copy of the tips list.
func (s *Server) Tips() []string { return slices.Clone(s.tips) }

// Motd returns a copy of the message of the day.
func (s *Server) Motd() []string { return slices.Clone(s.motd) }

// Help returns a copy of the help text.
func (s *Server) Help() []string { return slices.Clone(s.help) }

// CreateGrenade adds g to the world and schedules its detonation after
// the fuse. Returns the stored grenade with its object id set.
func (s *Server) CreateGrenade(g model.Grenade) *model.Grenade {
	created := s.world.Add(g)
	id := created.ObjectID

	fuse := time.Duration(float64(g.Fuse) * float64(time.Second))
	s.loop.CallLater(fuse, func() { s.detonate(id) })

	return created
}

// detonate removes the grenade and kills every living player inside its
// blast box.
func (s *Server) detonate(id uint32) {
	g, ok := s.world.Remove(id)
	if !ok {
		return
	}

	var victims []*model.Player
	s.clients.ForEachPlayer(func(p *model.Player, _ *Client) bool {
		if p.IsAlive() && p.IsConnected() && g.Position.Near(p.Position(), s.cfg.Minefield.BlastRadius) {
			victims = append(victims, p)
		}
		return true
	})

	slog.Debug("grenade detonated", "objectID", id, "name", g.Name, "victims", len(victims))

	// Only the environment creates grenades, so nobody is credited:
	// each death counts as the victim's own.
	for _, victim := range victims {
		s.KillPlayer(victim, victim, model.KillGrenade, g)
	}
}

// KillPlayer kills victim and dispatches the death chain.
// Dead players are ignored.
func (s *Server) KillPlayer(victim, killer *model.Player, cause model.KillType, grenade *model.Grenade) {
	if !victim.IsAlive() {
		return
	}
	victim.SetAlive(false)
	s.hooks.Death(victim, killer, cause, grenade)
}

// onDeath is the terminal death handler: kill feed and respawn timer.
func (s *Server) onDeath(victim, killer *model.Player, cause model.KillType, _ *model.Grenade) {
	pkt := &serverpackets.KillAction{
		PlayerID:    victim.ID(),
		KillerID:    killer.ID(),
		KillType:    cause,
		RespawnTime: uint8(s.cfg.RespawnTime / time.Second),
	}
	data, err := pkt.Write()
	if err != nil {
		slog.Error("serializing kill action", "error", err)
	} else {
		s.BroadcastPacket(data)
	}

	slog.Info("player killed",
		"victim", victim.Name(),
		"killer", killer.Name(),
		"cause", cause)

	s.loop.CallLater(s.cfg.RespawnTime, func() {
		if victim.IsConnected() {
			victim.SetAlive(true)
		}
	})
}
