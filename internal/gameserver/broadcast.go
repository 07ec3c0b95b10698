package gameserver

import (
	"log/slog"
	"strings"

	"github.com/udisondev/minefield/internal/gameserver/serverpackets"
	"github.com/udisondev/minefield/internal/model"
)

// BroadcastPacket sends a serialized packet to every joined player.
// Best effort: a client whose queue is full is dropped, the rest still get it.
func (s *Server) BroadcastPacket(data []byte) {
	s.clients.ForEachPlayer(func(p *model.Player, c *Client) bool {
		if err := c.Send(data); err != nil {
			slog.Debug("broadcast skipped client", "player", p.Name(), "error", err)
		}
		return true
	})
}

// BroadcastChat sends a system chat line to every joined player.
func (s *Server) BroadcastChat(msg string) {
	slog.Info("broadcast chat", "message", msg)
	for _, line := range chatLines(msg) {
		data, err := serverpackets.NewSystemMessage(line).Write()
		if err != nil {
			slog.Error("serializing chat message", "error", err)
			continue
		}
		s.BroadcastPacket(data)
	}
}

// SendChat sends system chat lines to one client.
func (s *Server) SendChat(c *Client, msg string) {
	for _, line := range chatLines(msg) {
		data, err := serverpackets.NewSystemMessage(line).Write()
		if err != nil {
			slog.Error("serializing chat message", "error", err)
			continue
		}
		if err := c.Send(data); err != nil {
			slog.Debug("chat reply dropped", "client", c.IP(), "error", err)
			return
		}
	}
}

// chatLines splits multi-line text; clients render one line per packet.
func chatLines(msg string) []string {
	msg = strings.TrimRight(msg, "\n")
	if msg == "" {
		return nil
	}
	return strings.Split(msg, "\n")
}

// NotifyPlayer sends msg to p from any goroutine. Dropped when p has left
// or the loop has stopped.
func (s *Server) NotifyPlayer(p *model.Player, msg string) {
	posted := s.loop.Post(func() {
		c := s.clients.Get(p.ID())
		if c == nil || c.Player() != p {
			slog.Debug("notification dropped, player gone", "player", p.Name())
			return
		}
		s.SendChat(c, msg)
	})
	if !posted {
		slog.Debug("notification dropped, loop stopped", "player", p.Name())
	}
}
