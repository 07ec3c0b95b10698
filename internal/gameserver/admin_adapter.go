package gameserver

import "github.com/udisondev/minefield/internal/model"

// AdminPlayerLister adapts ClientManager to commands.PlayerLister.
// This avoids import cycle between gameserver and admin/commands packages.
type AdminPlayerLister struct {
	cm *ClientManager
}

// NewAdminPlayerLister creates a new adapter.
func NewAdminPlayerLister(cm *ClientManager) *AdminPlayerLister {
	return &AdminPlayerLister{cm: cm}
}

// ForEachPlayer iterates over joined players in id order.
func (a *AdminPlayerLister) ForEachPlayer(fn func(*model.Player) bool) {
	a.cm.ForEachPlayer(func(p *model.Player, _ *Client) bool {
		return fn(p)
	})
}
