package commands

import (
	"fmt"
	"strings"

	"github.com/udisondev/minefield/internal/gameserver/admin"
	"github.com/udisondev/minefield/internal/model"
)

const playersRow = "#%-2s  %-20s %s%s\n"

// Players handles /players: lists connected players with their address
// and user types.
type Players struct {
	players PlayerLister
}

// NewPlayers creates the players command.
func NewPlayers(players PlayerLister) *Players {
	return &Players{players: players}
}

func (c *Players) Names() []string      { return []string{"players"} }
func (c *Players) RequiredRole() string { return admin.RoleAdmin }

func (c *Players) Handle(_ *model.Player, _ []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, playersRow, "id", "Name", "ip", " (rights)")

	c.players.ForEachPlayer(func(p *model.Player) bool {
		rights := strings.Join(p.UserTypes(), ", ")
		if rights != "" {
			rights = " (" + rights + ")"
		}
		fmt.Fprintf(&b, playersRow, fmt.Sprint(p.ID()), p.Name(), p.Address(), rights)
		return true
	})

	return b.String(), nil
}
