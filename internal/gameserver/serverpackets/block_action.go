package serverpackets

import (
	"github.com/udisondev/minefield/internal/gameserver/packet"
	"github.com/udisondev/minefield/internal/model"
)

// OpcodeBlockAction is the S2C opcode 0x0D.
// Relays an accepted build or destroy to every client.
const OpcodeBlockAction byte = 0x0D

// BlockAction announces a terrain change.
type BlockAction struct {
	PlayerID uint8
	Action   model.BlockAction
	X, Y, Z  int32
}

// Write serializes the BlockAction packet.
func (p *BlockAction) Write() ([]byte, error) {
	w := packet.NewWriter(15)
	_ = w.WriteByte(OpcodeBlockAction)
	_ = w.WriteByte(p.PlayerID)
	_ = w.WriteByte(byte(p.Action))
	w.WriteInt(p.X)
	w.WriteInt(p.Y)
	w.WriteInt(p.Z)
	return w.Bytes(), nil
}
