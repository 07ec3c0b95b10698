package model

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// MaxPlayers is the protocol limit on simultaneously connected players.
// Player IDs are 0..MaxPlayers-1.
const MaxPlayers = 32

// EnvironmentOwnerID is the owner ID of objects spawned by the world itself.
// It lies outside the valid player ID range so clients never credit a player.
const EnvironmentOwnerID uint8 = MaxPlayers

// Player is a connected player.
// Position/crouch are written by the event loop only; mu guards readers on
// other goroutines (admin report, logging).
type Player struct {
	id      uint8
	name    string
	address string

	mu        sync.RWMutex
	position  Vec3
	crouching bool
	alive     bool
	userTypes []string

	connected atomic.Bool
}

// NewPlayer creates a connected, alive player.
func NewPlayer(id uint8, name, address string) (*Player, error) {
	if id >= MaxPlayers {
		return nil, fmt.Errorf("player id must be below %d, got %d", MaxPlayers, id)
	}
	if name == "" {
		return nil, fmt.Errorf("player name must not be empty")
	}

	p := &Player{
		id:      id,
		name:    name,
		address: address,
		alive:   true,
	}
	p.connected.Store(true)
	return p, nil
}

// ID returns the protocol player ID.
func (p *Player) ID() uint8 { return p.id }

// Name returns the display name.
func (p *Player) Name() string { return p.name }

// Address returns the remote IP address.
func (p *Player) Address() string { return p.address }

// Position returns the current world position.
func (p *Player) Position() Vec3 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.position
}

// SetPosition updates the world position.
func (p *Player) SetPosition(v Vec3) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = v
}

// IsCrouching reports whether the crouch key is held.
func (p *Player) IsCrouching() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.crouching
}

// SetCrouching updates crouch state.
func (p *Player) SetCrouching(c bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.crouching = c
}

// IsAlive reports whether the player is alive.
func (p *Player) IsAlive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.alive
}

// SetAlive marks the player alive or dead.
func (p *Player) SetAlive(alive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alive = alive
}

// UserTypes returns a copy of the privilege labels (e.g. "admin").
func (p *Player) UserTypes() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.userTypes)
}

// AddUserType grants a privilege label. Duplicates are ignored.
func (p *Player) AddUserType(ut string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !slices.Contains(p.userTypes, ut) {
		p.userTypes = append(p.userTypes, ut)
	}
}

// HasUserType reports whether the player holds the given label.
func (p *Player) HasUserType(ut string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Contains(p.userTypes, ut)
}

// IsConnected reports whether the connection is still open.
func (p *Player) IsConnected() bool {
	return p.connected.Load()
}

// MarkDisconnected flags the player as gone. Pending timers check this.
func (p *Player) MarkDisconnected() {
	p.connected.Store(false)
}
