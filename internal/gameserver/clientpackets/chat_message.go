package clientpackets

import (
	"fmt"
	"strings"

	"github.com/udisondev/minefield/internal/gameserver/packet"
)

// OpcodeChatMessage is the opcode for ChatMessage packet (C2S 0x11).
const OpcodeChatMessage = 0x11

// ChatMessage represents the parsed client packet.
type ChatMessage struct {
	PlayerID uint8
	Type     uint8
	Text     string
}

// ParseChatMessage parses the ChatMessage packet body (opcode already stripped).
func ParseChatMessage(data []byte) (*ChatMessage, error) {
	r := packet.NewReader(data)

	id, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading player id: %w", err)
	}

	chatType, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading chat type: %w", err)
	}

	return &ChatMessage{
		PlayerID: id,
		Type:     chatType,
		Text:     strings.TrimSpace(r.ReadString()),
	}, nil
}
