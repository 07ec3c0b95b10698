package commands

import (
	"fmt"

	"github.com/udisondev/minefield/internal/gameserver/admin"
	"github.com/udisondev/minefield/internal/model"
)

// Map handles /map [name]: switches to the named map, or to the next
// rotation entry when no name is given.
type Map struct {
	maps MapChanger
}

// NewMap creates the map command.
func NewMap(maps MapChanger) *Map {
	return &Map{maps: maps}
}

func (c *Map) Names() []string      { return []string{"map", "changemap"} }
func (c *Map) RequiredRole() string { return admin.RoleAdmin }

func (c *Map) Handle(_ *model.Player, args []string) (string, error) {
	name := c.maps.NextMap()
	if len(args) >= 2 {
		name = args[1]
	}

	if err := c.maps.ChangeMap(name); err != nil {
		return "", fmt.Errorf("changing map to %q: %w", name, err)
	}
	return fmt.Sprintf("Map changed to %s", c.maps.CurrentMap()), nil
}
