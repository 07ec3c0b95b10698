package clientpackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/minefield/internal/gameserver/packet"
	"github.com/udisondev/minefield/internal/model"
)

func TestParsePositionData(t *testing.T) {
	w := packet.NewWriter(12)
	w.WriteFloat(256.25)
	w.WriteFloat(128)
	w.WriteFloat(40.5)

	p, err := ParsePositionData(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, model.NewVec3(256.25, 128, 40.5), p.Position)

	_, err = ParsePositionData(w.Bytes()[:8])
	assert.Error(t, err)
}

func TestParseInputData(t *testing.T) {
	p, err := ParseInputData([]byte{5, KeyUp | KeyCrouch})
	require.NoError(t, err)
	assert.Equal(t, uint8(5), p.PlayerID)
	assert.True(t, p.Crouching())

	p, err = ParseInputData([]byte{5, KeySprint})
	require.NoError(t, err)
	assert.False(t, p.Crouching())

	_, err = ParseInputData([]byte{5})
	assert.Error(t, err)
}

func TestParseBlockAction(t *testing.T) {
	w := packet.NewWriter(14)
	_ = w.WriteByte(2)
	_ = w.WriteByte(byte(model.SpadeDestroy))
	w.WriteInt(100)
	w.WriteInt(200)
	w.WriteInt(60)

	p, err := ParseBlockAction(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, &BlockAction{PlayerID: 2, Action: model.SpadeDestroy, X: 100, Y: 200, Z: 60}, p)
}

func TestParseBlockAction_UnknownAction(t *testing.T) {
	w := packet.NewWriter(14)
	_ = w.WriteByte(2)
	_ = w.WriteByte(9)
	w.WriteInt(0)
	w.WriteInt(0)
	w.WriteInt(0)

	_, err := ParseBlockAction(w.Bytes())
	assert.Error(t, err)
}

func TestParseChatMessage(t *testing.T) {
	w := packet.NewWriter(16)
	_ = w.WriteByte(1)
	_ = w.WriteByte(0)
	w.WriteString("  /players ")

	p, err := ParseChatMessage(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "/players", p.Text)
}

func TestParseExistingPlayer(t *testing.T) {
	w := packet.NewWriter(32)
	_ = w.WriteByte(7) // id
	_ = w.WriteByte(1) // team
	_ = w.WriteByte(0) // weapon
	_ = w.WriteByte(2) // held item
	w.WriteInt(0)      // kills
	w.WriteBytes([]byte{0x70, 0x70, 0x70})
	w.WriteString("learn_more")

	p, err := ParseExistingPlayer(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint8(7), p.PlayerID)
	assert.Equal(t, int8(1), p.Team)
	assert.Equal(t, "learn_more", p.Name)
}

func TestParseExistingPlayer_DefaultName(t *testing.T) {
	data := []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3}
	p, err := ParseExistingPlayer(data)
	require.NoError(t, err)
	assert.Equal(t, "Deuce", p.Name)
}
