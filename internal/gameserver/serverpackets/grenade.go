package serverpackets

import (
	"github.com/udisondev/minefield/internal/gameserver/packet"
	"github.com/udisondev/minefield/internal/model"
)

// OpcodeGrenade is the S2C opcode 0x06.
// Sent when an explosive is created so clients can simulate and render it.
const OpcodeGrenade byte = 0x06

// Grenade announces a live grenade.
type Grenade struct {
	PlayerID uint8   // thrower, or model.EnvironmentOwnerID
	Fuse     float32 // seconds until detonation
	Position model.Vec3
	Velocity model.Vec3
}

// NewGrenade builds the packet from a world object.
func NewGrenade(g *model.Grenade) *Grenade {
	return &Grenade{
		PlayerID: g.OwnerID,
		Fuse:     g.Fuse,
		Position: g.Position,
		Velocity: g.Velocity,
	}
}

// Write serializes the Grenade packet.
func (p *Grenade) Write() ([]byte, error) {
	w := packet.NewWriter(30) // 1 + 1 + 4 + 3*4 + 3*4
	_ = w.WriteByte(OpcodeGrenade)
	_ = w.WriteByte(p.PlayerID)
	w.WriteFloat(p.Fuse)
	writeVec3(w, p.Position)
	writeVec3(w, p.Velocity)
	return w.Bytes(), nil
}

func writeVec3(w *packet.Writer, v model.Vec3) {
	w.WriteFloat(v.X)
	w.WriteFloat(v.Y)
	w.WriteFloat(v.Z)
}
