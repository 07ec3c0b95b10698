package commands

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/minefield/internal/gameserver/admin"
	"github.com/udisondev/minefield/internal/model"
)

// Login handles /login <password> and grants the role whose password matches.
type Login struct {
	passwords admin.Passwords
}

// NewLogin creates the login command.
func NewLogin(passwords admin.Passwords) *Login {
	return &Login{passwords: passwords}
}

func (c *Login) Names() []string      { return []string{"login"} }
func (c *Login) RequiredRole() string { return "" }

func (c *Login) Handle(player *model.Player, args []string) (string, error) {
	if len(args) != 2 {
		return "Usage: /login <password>", nil
	}

	role, ok := c.passwords.Authenticate(args[1])
	if !ok {
		slog.Warn("failed login", "player", player.Name(), "address", player.Address())
		return "Invalid password!", nil
	}

	player.AddUserType(role)
	slog.Info("player logged in", "player", player.Name(), "role", role)
	return fmt.Sprintf("You logged in as %s", role), nil
}
