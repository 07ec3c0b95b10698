package clientpackets

import (
	"fmt"

	"github.com/udisondev/minefield/internal/gameserver/packet"
	"github.com/udisondev/minefield/internal/model"
)

// OpcodeBlockAction is the opcode for BlockAction packet (C2S 0x0D).
// Client sends this when it builds or destroys a block.
const OpcodeBlockAction = 0x0D

// BlockAction represents the parsed client packet.
type BlockAction struct {
	PlayerID uint8
	Action   model.BlockAction
	X        int32
	Y        int32
	Z        int32
}

// ParseBlockAction parses the BlockAction packet body (opcode already stripped).
func ParseBlockAction(data []byte) (*BlockAction, error) {
	r := packet.NewReader(data)

	id, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading player id: %w", err)
	}

	action, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading action: %w", err)
	}
	if model.BlockAction(action) > model.GrenadeDestroy {
		return nil, fmt.Errorf("unknown block action %d", action)
	}

	x, err := r.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("reading x: %w", err)
	}

	y, err := r.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("reading y: %w", err)
	}

	z, err := r.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("reading z: %w", err)
	}

	return &BlockAction{
		PlayerID: id,
		Action:   model.BlockAction(action),
		X:        x,
		Y:        y,
		Z:        z,
	}, nil
}
