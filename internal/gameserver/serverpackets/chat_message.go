package serverpackets

import (
	"fmt"

	"github.com/udisondev/minefield/internal/gameserver/packet"
)

// OpcodeChatMessage is the S2C opcode 0x11 (shared with the C2S chat packet).
const OpcodeChatMessage byte = 0x11

// ChatType selects how the client renders a chat line.
type ChatType uint8

const (
	ChatAll    ChatType = 0
	ChatTeam   ChatType = 1
	ChatSystem ChatType = 2
)

// SystemPlayerID marks chat lines sent by the server itself.
const SystemPlayerID uint8 = 0xFF

// maxChatLength keeps a chat line within what clients display.
const maxChatLength = 255

// ChatMessage carries one line of chat text.
type ChatMessage struct {
	PlayerID uint8
	Type     ChatType
	Message  string
}

// NewSystemMessage creates a server chat line.
func NewSystemMessage(msg string) *ChatMessage {
	return &ChatMessage{PlayerID: SystemPlayerID, Type: ChatSystem, Message: msg}
}

// Write serializes the ChatMessage packet.
func (p *ChatMessage) Write() ([]byte, error) {
	if len(p.Message) > maxChatLength {
		return nil, fmt.Errorf("chat message too long: %d bytes", len(p.Message))
	}

	w := packet.NewWriter(3 + len(p.Message))
	_ = w.WriteByte(OpcodeChatMessage)
	_ = w.WriteByte(p.PlayerID)
	_ = w.WriteByte(byte(p.Type))
	w.WriteString(p.Message)
	return w.Bytes(), nil
}
