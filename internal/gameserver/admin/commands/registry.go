package commands

import "github.com/udisondev/minefield/internal/gameserver/admin"

// RegisterAll registers all chat commands into the handler.
func RegisterAll(h *admin.Handler, passwords admin.Passwords, players PlayerLister, maps MapChanger) {
	h.Register(NewLogin(passwords))
	h.Register(NewPlayers(players))
	h.Register(NewMap(maps))
}
