package clientpackets

import (
	"fmt"

	"github.com/udisondev/minefield/internal/gameserver/packet"
	"github.com/udisondev/minefield/internal/model"
)

// OpcodePositionData is the opcode for PositionData packet (C2S 0x00).
// Client sends its own position several times per second.
const OpcodePositionData = 0x00

// PositionData represents the parsed client packet.
type PositionData struct {
	Position model.Vec3
}

// ParsePositionData parses the PositionData packet body (opcode already stripped).
func ParsePositionData(data []byte) (*PositionData, error) {
	r := packet.NewReader(data)

	pos, err := readVec3(r)
	if err != nil {
		return nil, fmt.Errorf("reading position: %w", err)
	}

	return &PositionData{Position: pos}, nil
}

func readVec3(r *packet.Reader) (model.Vec3, error) {
	x, err := r.ReadFloat()
	if err != nil {
		return model.Vec3{}, fmt.Errorf("reading x: %w", err)
	}
	y, err := r.ReadFloat()
	if err != nil {
		return model.Vec3{}, fmt.Errorf("reading y: %w", err)
	}
	z, err := r.ReadFloat()
	if err != nil {
		return model.Vec3{}, fmt.Errorf("reading z: %w", err)
	}
	return model.NewVec3(x, y, z), nil
}
