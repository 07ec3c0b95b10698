package serverpackets

import (
	"github.com/udisondev/minefield/internal/gameserver/packet"
	"github.com/udisondev/minefield/internal/model"
)

// OpcodeKillAction is the S2C opcode 0x10.
// Sent when a player dies; shows the kill feed entry and respawn timer.
const OpcodeKillAction byte = 0x10

// KillAction notifies clients of a death.
type KillAction struct {
	PlayerID    uint8 // victim
	KillerID    uint8 // equals PlayerID for environment kills
	KillType    model.KillType
	RespawnTime uint8 // seconds
}

// Write serializes the KillAction packet.
func (p *KillAction) Write() ([]byte, error) {
	w := packet.NewWriter(5)
	_ = w.WriteByte(OpcodeKillAction)
	_ = w.WriteByte(p.PlayerID)
	_ = w.WriteByte(p.KillerID)
	_ = w.WriteByte(byte(p.KillType))
	_ = w.WriteByte(p.RespawnTime)
	return w.Bytes(), nil
}
