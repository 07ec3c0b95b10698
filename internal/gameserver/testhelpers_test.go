package gameserver

import (
	"context"
	"encoding/binary"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/minefield/internal/config"
	"github.com/udisondev/minefield/internal/event"
	"github.com/udisondev/minefield/internal/gameserver/packet"
)

func newTestClient(t *testing.T, conn net.Conn, pool *BytePool, queueSize int) *Client {
	t.Helper()
	if pool == nil {
		pool = NewBytePool(64)
	}
	return &Client{
		conn:         conn,
		ip:           "10.0.0.1",
		sendCh:       make(chan []byte, queueSize),
		closeCh:      make(chan struct{}),
		writePool:    pool,
		writeTimeout: 5 * time.Second,
	}
}

// sent drains the client's write queue and returns the payloads.
func sent(c *Client) [][]byte {
	var out [][]byte
	for {
		select {
		case frame := <-c.sendCh:
			size := binary.LittleEndian.Uint16(frame)
			out = append(out, append([]byte(nil), frame[packet.HeaderSize:packet.HeaderSize+int(size)]...))
		default:
			return out
		}
	}
}

// sentWithOpcode filters payloads by their first byte.
func sentWithOpcode(c *Client, opcode byte) [][]byte {
	var out [][]byte
	for _, p := range sent(c) {
		if p[0] == opcode {
			out = append(out, p)
		}
	}
	return out
}

func writeMap(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644))
}

func testConfig(t *testing.T) config.Server {
	t.Helper()
	cfg := config.DefaultServer()
	cfg.MapsDir = t.TempDir()
	cfg.Maps = []string{"fenced", "plain"}
	cfg.Motd = []string{"Welcome"}

	writeMap(t, cfg.MapsDir, "fenced", `
extensions:
  minefields:
    - border: 1
      left: 59
      top: 154
      right: 451
      bottom: 355
`)
	writeMap(t, cfg.MapsDir, "plain", `
author: learn_more
`)
	return cfg
}

// startLoop runs a loop until the test ends.
func startLoop(t *testing.T) *event.Loop {
	t.Helper()
	loop := event.NewLoop(0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = loop.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return loop
}

// onLoop runs fn on the loop and waits for it.
func onLoop(t *testing.T, s *Server, fn func()) {
	t.Helper()
	done := make(chan struct{})
	require.True(t, s.loop.Post(func() {
		defer close(done)
		fn()
	}))
	<-done
}
