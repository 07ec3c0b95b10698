package gameserver

import (
	"bytes"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/minefield/internal/gameserver/packet"
)

func TestWritePump_SinglePacket(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	c := newTestClient(t, client, nil, 16)
	go c.writePump()
	defer c.CloseAsync()

	require.NoError(t, c.Send([]byte{0x01, 0x02, 0x03}))

	require.NoError(t, server.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, packet.MaxPacketSize)
	payload, err := packet.ReadFrame(server, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, payload)
}

func TestWritePump_BatchDrain(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	c := newTestClient(t, client, nil, 16)

	// queued before the pump starts, so they go out as one batch
	for _, p := range [][]byte{{0x01, 0x02}, {0x03}, {0x04, 0x05, 0x06}} {
		require.NoError(t, c.Send(p))
	}

	go c.writePump()

	want := []byte{2, 0, 0x01, 0x02, 1, 0, 0x03, 3, 0, 0x04, 0x05, 0x06}
	got := make([]byte, len(want))
	require.NoError(t, server.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, err := io.ReadFull(server, got)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, got), "got %v", got)

	c.Close()
}

func TestSend_QueueFullClosesClient(t *testing.T) {
	c := newTestClient(t, nil, nil, 1)

	require.NoError(t, c.Send([]byte{0x01}))
	assert.Error(t, c.Send([]byte{0x02}))

	select {
	case <-c.closeCh:
	default:
		t.Fatal("slow client not closed")
	}

	assert.ErrorIs(t, c.Send([]byte{0x03}), ErrClientClosed)
}

func TestSend_CopiesPayload(t *testing.T) {
	c := newTestClient(t, nil, nil, 4)

	payload := []byte{0x01, 0x02}
	require.NoError(t, c.Send(payload))
	payload[0] = 0xFF

	assert.Equal(t, [][]byte{{0x01, 0x02}}, sent(c))
}
