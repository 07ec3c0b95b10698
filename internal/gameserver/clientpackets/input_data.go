package clientpackets

import (
	"fmt"

	"github.com/udisondev/minefield/internal/gameserver/packet"
)

// OpcodeInputData is the opcode for InputData packet (C2S 0x03).
const OpcodeInputData = 0x03

// Key state bits.
const (
	KeyUp     = 1 << 0
	KeyDown   = 1 << 1
	KeyLeft   = 1 << 2
	KeyRight  = 1 << 3
	KeyJump   = 1 << 4
	KeyCrouch = 1 << 5
	KeySneak  = 1 << 6
	KeySprint = 1 << 7
)

// InputData represents the parsed client packet.
type InputData struct {
	PlayerID  uint8
	KeyStates uint8
}

// Crouching reports whether the crouch key is held.
func (p *InputData) Crouching() bool {
	return p.KeyStates&KeyCrouch != 0
}

// ParseInputData parses the InputData packet body (opcode already stripped).
func ParseInputData(data []byte) (*InputData, error) {
	r := packet.NewReader(data)

	id, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading player id: %w", err)
	}

	keys, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading key states: %w", err)
	}

	return &InputData{PlayerID: id, KeyStates: keys}, nil
}
