// Package gameserver hosts one game session: TCP connections, the player
// table, the current map and the hook chains game features register on.
package gameserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/udisondev/minefield/internal/config"
	"github.com/udisondev/minefield/internal/event"
	"github.com/udisondev/minefield/internal/gameserver/admin"
	"github.com/udisondev/minefield/internal/gameserver/admin/commands"
	"github.com/udisondev/minefield/internal/gameserver/packet"
)

const writeBufSize = 512

var errLoopStopped = errors.New("event loop stopped")

// Server is the game session. Everything except connection I/O runs on
// the event loop.
type Server struct {
	cfg   config.Server
	loop  *event.Loop
	hooks *event.Hooks
	admin *admin.Handler

	readPool  *BytePool
	writePool *BytePool

	clients *ClientManager
	world   *World

	// Session state, owned by the loop.
	mapInfo  config.MapInfo
	mapIndex int
	tips     []string
	motd     []string
	help     []string

	listener net.Listener
	mu       sync.Mutex
}

// NewServer creates a session bound to loop. No map is loaded until
// ChangeMap is called.
func NewServer(cfg config.Server, loop *event.Loop) *Server {
	s := &Server{
		cfg:       cfg,
		loop:      loop,
		admin:     admin.NewHandler(),
		readPool:  NewBytePool(packet.MaxPacketSize),
		writePool: NewBytePool(writeBufSize),
		clients:   NewClientManager(cfg.MaxPlayers),
		world:     NewWorld(),
		mapIndex:  -1,
		tips:      append([]string(nil), cfg.Tips...),
		motd:      append([]string(nil), cfg.Motd...),
		help:      append([]string(nil), cfg.Help...),
	}

	s.hooks = event.NewHooks(event.Base{
		Death:     s.onDeath,
		MapChange: s.onMapChange,
	})

	commands.RegisterAll(s.admin, admin.Passwords(cfg.Passwords), NewAdminPlayerLister(s.clients), s)

	return s
}

// EnableMineKillStats registers /minekills backed by stats.
// Call before the loop starts.
func (s *Server) EnableMineKillStats(stats commands.MineKillStats) {
	s.admin.Register(commands.NewMineKills(stats, s, s))
}

// Hooks returns the hook chains for feature registration.
// Register before the loop starts.
func (s *Server) Hooks() *event.Hooks {
	return s.hooks
}

// Clients returns the connection manager.
func (s *Server) Clients() *ClientManager {
	return s.clients
}

// Admin returns the chat command handler.
func (s *Server) Admin() *admin.Handler {
	return s.admin
}

// CallLater runs fn on the event loop after delay.
func (s *Server) CallLater(delay time.Duration, fn func()) {
	s.loop.CallLater(delay, fn)
}

// Addr returns the address the server is listening on.
// Returns nil if the server hasn't started yet.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close closes the listener.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Run listens on cfg.BindAddress:cfg.Port and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.BindAddress, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is canceled.
// Waits for all connection goroutines before returning.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	slog.Info("minefield server started", "address", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				slog.Info("minefield server stopped")
				return nil
			}
			slog.Error("failed to accept new connection", "error", err)
			continue
		}

		if tcpConn, ok := conn.(*net.TCPConn); ok {
			if err := tcpConn.SetKeepAlive(true); err != nil {
				slog.Warn("set keepalive failed", "error", err)
			}
			if err := tcpConn.SetKeepAlivePeriod(30 * time.Second); err != nil {
				slog.Warn("set keepalive period failed", "error", err)
			}
		}

		wg.Go(func() {
			s.handleConnection(ctx, conn)
		})
	}
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	client, err := NewClient(conn, s.writePool, s.cfg.SendQueueSize, s.cfg.WriteTimeout)
	if err != nil {
		slog.Error("failed to create client", "error", err)
		conn.Close()
		return
	}
	defer client.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	s.clients.Add(client)
	defer s.disconnect(client)

	slog.Info("new client connection", "remote", client.IP())

	go client.writePump()

	readTimeout := s.cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}

	for {
		if err := s.readPacket(client, readTimeout); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, errLoopStopped) {
				slog.Info("client disconnected", "client", client.IP())
			} else {
				slog.Warn("packet read error", "client", client.IP(), "error", err)
			}
			return
		}
	}
}

// readPacket reads one frame and hands it to the loop. The read buffer
// returns to the pool once the loop is done with it.
func (s *Server) readPacket(c *Client, readTimeout time.Duration) error {
	if err := c.Conn().SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return fmt.Errorf("setting read deadline: %w", err)
	}

	buf := s.readPool.Get(packet.MaxPacketSize)
	payload, err := packet.ReadFrame(c.Conn(), buf)
	if err != nil {
		s.readPool.Put(buf)
		return err
	}

	posted := s.loop.Post(func() {
		defer s.readPool.Put(buf)
		s.handlePacket(c, payload)
	})
	if !posted {
		s.readPool.Put(buf)
		return errLoopStopped
	}
	return nil
}

// disconnect marks the player gone right away so pending mine triggers
// drop, then releases its slot on the loop.
func (s *Server) disconnect(c *Client) {
	if p := c.Player(); p != nil {
		p.MarkDisconnected()
		slog.Info("player left", "player", p.Name(), "id", p.ID())
	}

	if !s.loop.Post(func() { s.removeClient(c) }) {
		s.removeClient(c)
	}
}

func (s *Server) removeClient(c *Client) {
	// may have joined after the read loop ended
	if p := c.Player(); p != nil {
		p.MarkDisconnected()
	}
	s.clients.Remove(c)
}
