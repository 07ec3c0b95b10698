package gameserver

import (
	"errors"
	"fmt"
	"sync"

	"github.com/udisondev/minefield/internal/model"
)

// ErrServerFull is returned by Join when every player id is taken.
var ErrServerFull = errors.New("server full")

// ClientManager tracks connections and the player id slots.
// Thread-safe: connections are added from network goroutines, players
// join and leave on the event loop.
type ClientManager struct {
	mu         sync.RWMutex
	maxPlayers int
	clients    map[*Client]struct{}
	players    [model.MaxPlayers]*Client // index = player id
	joined     int
}

// NewClientManager creates a manager with at most maxPlayers joined players.
func NewClientManager(maxPlayers int) *ClientManager {
	if maxPlayers <= 0 || maxPlayers > model.MaxPlayers {
		maxPlayers = model.MaxPlayers
	}
	return &ClientManager{
		maxPlayers: maxPlayers,
		clients:    make(map[*Client]struct{}, maxPlayers),
	}
}

// Add registers a new connection.
func (cm *ClientManager) Add(c *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.clients[c] = struct{}{}
}

// Remove drops the connection and frees its player id.
func (cm *ClientManager) Remove(c *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	delete(cm.clients, c)
	if p := c.Player(); p != nil && cm.players[p.ID()] == c {
		cm.players[p.ID()] = nil
		cm.joined--
	}
}

// Join assigns the lowest free player id to c and creates its player.
func (cm *ClientManager) Join(c *Client, name string) (*model.Player, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for id := range cm.maxPlayers {
		if cm.players[id] != nil {
			continue
		}

		p, err := model.NewPlayer(uint8(id), name, c.IP())
		if err != nil {
			return nil, fmt.Errorf("creating player: %w", err)
		}
		c.setPlayer(p)
		cm.players[id] = c
		cm.joined++
		return p, nil
	}
	return nil, ErrServerFull
}

// Get returns the client holding player id, or nil.
func (cm *ClientManager) Get(id uint8) *Client {
	if int(id) >= len(cm.players) {
		return nil
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.players[id]
}

// Count returns total number of connections.
func (cm *ClientManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}

// PlayerCount returns number of joined players.
func (cm *ClientManager) PlayerCount() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.joined
}

// ForEachClient iterates over all connections.
// If fn returns false, iteration stops.
func (cm *ClientManager) ForEachClient(fn func(*Client) bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for c := range cm.clients {
		if !fn(c) {
			return
		}
	}
}

// ForEachPlayer iterates over joined players in id order.
// If fn returns false, iteration stops.
func (cm *ClientManager) ForEachPlayer(fn func(*model.Player, *Client) bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for _, c := range cm.players {
		if c == nil {
			continue
		}
		if !fn(c.Player(), c) {
			return
		}
	}
}
