package clientpackets

import (
	"fmt"

	"github.com/udisondev/minefield/internal/gameserver/packet"
)

// OpcodeExistingPlayer is the opcode for ExistingPlayer packet (C2S 0x09).
// Client sends this once after loading the map to join the game.
const OpcodeExistingPlayer = 0x09

// ExistingPlayer represents the parsed client packet.
// Only the fields the server uses are kept.
type ExistingPlayer struct {
	PlayerID uint8
	Team     int8
	Name     string
}

// ParseExistingPlayer parses the ExistingPlayer packet body (opcode already stripped).
// Layout: id, team, weapon, held item, kills (u32), color (3 bytes), name.
func ParseExistingPlayer(data []byte) (*ExistingPlayer, error) {
	r := packet.NewReader(data)

	id, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading player id: %w", err)
	}

	team, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading team: %w", err)
	}

	// weapon, held item
	for range 2 {
		if _, err := r.ReadByte(); err != nil {
			return nil, fmt.Errorf("reading loadout: %w", err)
		}
	}

	if _, err := r.ReadInt(); err != nil {
		return nil, fmt.Errorf("reading kills: %w", err)
	}

	for range 3 {
		if _, err := r.ReadByte(); err != nil {
			return nil, fmt.Errorf("reading color: %w", err)
		}
	}

	name := r.ReadString()
	if name == "" {
		name = "Deuce"
	}

	return &ExistingPlayer{
		PlayerID: id,
		Team:     int8(team),
		Name:     name,
	}, nil
}
