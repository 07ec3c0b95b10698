package gameserver

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/udisondev/minefield/internal/gameserver/clientpackets"
	"github.com/udisondev/minefield/internal/gameserver/serverpackets"
	"github.com/udisondev/minefield/internal/model"
)

// handlePacket dispatches one inbound packet. Runs on the event loop.
// data starts with the opcode; the frame reader never yields empty frames.
func (s *Server) handlePacket(c *Client, data []byte) {
	opcode, body := data[0], data[1:]

	if opcode == clientpackets.OpcodeExistingPlayer {
		s.handleJoin(c, body)
		return
	}

	p := c.Player()
	if p == nil {
		slog.Debug("packet before join ignored", "client", c.IP(), "opcode", opcode)
		return
	}

	var err error
	switch opcode {
	case clientpackets.OpcodePositionData:
		err = s.handlePosition(p, body)
	case clientpackets.OpcodeInputData:
		err = s.handleInput(p, body)
	case clientpackets.OpcodeBlockAction:
		err = s.handleBlockAction(p, body)
	case clientpackets.OpcodeChatMessage:
		err = s.handleChat(c, p, body)
	default:
		slog.Debug("unhandled packet", "player", p.Name(), "opcode", opcode)
	}

	if err != nil {
		slog.Warn("malformed packet", "player", p.Name(), "opcode", opcode, "error", err)
	}
}

func (s *Server) handleJoin(c *Client, body []byte) {
	if c.Player() != nil {
		return
	}

	pkt, err := clientpackets.ParseExistingPlayer(body)
	if err != nil {
		slog.Warn("malformed join packet", "client", c.IP(), "error", err)
		return
	}

	p, err := s.clients.Join(c, pkt.Name)
	if err != nil {
		slog.Warn("join rejected", "client", c.IP(), "name", pkt.Name, "error", err)
		if errors.Is(err, ErrServerFull) {
			s.SendChat(c, "Server is full")
			c.CloseAsync()
		}
		return
	}

	slog.Info("player joined", "player", p.Name(), "id", p.ID(), "address", p.Address())

	for _, line := range s.motd {
		s.SendChat(c, line)
	}
}

func (s *Server) handlePosition(p *model.Player, body []byte) error {
	pkt, err := clientpackets.ParsePositionData(body)
	if err != nil {
		return err
	}

	p.SetPosition(pkt.Position)
	if p.IsAlive() {
		s.hooks.Movement(p)
	}
	return nil
}

func (s *Server) handleInput(p *model.Player, body []byte) error {
	pkt, err := clientpackets.ParseInputData(body)
	if err != nil {
		return err
	}
	p.SetCrouching(pkt.Crouching())
	return nil
}

func (s *Server) handleBlockAction(p *model.Player, body []byte) error {
	pkt, err := clientpackets.ParseBlockAction(body)
	if err != nil {
		return err
	}
	if !p.IsAlive() {
		return nil
	}

	if pkt.Action != model.BuildBlock {
		if !s.hooks.Destroy(p, int(pkt.X), int(pkt.Y), int(pkt.Z), pkt.Action) {
			return nil
		}
	}

	out := &serverpackets.BlockAction{
		PlayerID: p.ID(),
		Action:   pkt.Action,
		X:        pkt.X,
		Y:        pkt.Y,
		Z:        pkt.Z,
	}
	data, err := out.Write()
	if err != nil {
		slog.Error("serializing block action", "error", err)
		return nil
	}
	s.BroadcastPacket(data)
	return nil
}

func (s *Server) handleChat(c *Client, p *model.Player, body []byte) error {
	pkt, err := clientpackets.ParseChatMessage(body)
	if err != nil {
		return err
	}
	if pkt.Text == "" {
		return nil
	}

	if cmd, ok := strings.CutPrefix(pkt.Text, "/"); ok {
		if reply, handled := s.admin.Handle(p, cmd); handled && reply != "" {
			s.SendChat(c, reply)
		}
		return nil
	}

	chatType := serverpackets.ChatAll
	if pkt.Type == uint8(serverpackets.ChatTeam) {
		chatType = serverpackets.ChatTeam
	}

	out := &serverpackets.ChatMessage{PlayerID: p.ID(), Type: chatType, Message: pkt.Text}
	data, err := out.Write()
	if err != nil {
		return err
	}

	slog.Info("chat message", "player", p.Name(), "message", pkt.Text)
	s.BroadcastPacket(data)
	return nil
}
