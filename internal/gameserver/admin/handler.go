package admin

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/minefield/internal/model"
)

// Replies for dispatch failures.
const (
	ReplyInvalidCommand = "Invalid command"
	ReplyNoRights       = "No administrator rights!"
)

// Command is a slash command typed in chat.
type Command interface {
	// Handle executes the command. args includes the command name at [0].
	// The returned text is sent back to the invoker.
	Handle(player *model.Player, args []string) (string, error)
	// Names returns all registered command names (without / prefix).
	Names() []string
	// RequiredRole returns the user type needed to run the command,
	// or "" when anyone may use it.
	RequiredRole() string
}

// Handler dispatches slash commands.
// Commands are registered once at startup, then read-only.
type Handler struct {
	mu   sync.RWMutex
	cmds map[string]Command // lowercase name → Command
}

// NewHandler creates an empty command handler.
func NewHandler() *Handler {
	return &Handler{
		cmds: make(map[string]Command, 8),
	}
}

// Register adds cmd under all of its names, case-insensitively.
func (h *Handler) Register(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range cmd.Names() {
		h.cmds[strings.ToLower(name)] = cmd
	}
}

// Handle runs a command. text is the chat message WITHOUT the / prefix.
// Returns the reply for the invoker and whether text was consumed as a
// command. Unknown commands are consumed with an error reply so they never
// leak into public chat.
func (h *Handler) Handle(player *model.Player, text string) (string, bool) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", false
	}
	name := strings.ToLower(parts[0])

	h.mu.RLock()
	cmd, ok := h.cmds[name]
	h.mu.RUnlock()

	if !ok {
		return ReplyInvalidCommand, true
	}

	if role := cmd.RequiredRole(); role != "" && !player.HasUserType(role) {
		slog.Warn("unauthorized command attempt",
			"player", player.Name(),
			"command", name,
			"required", role)
		return ReplyNoRights, true
	}

	slog.Info("command", "player", player.Name(), "command", name)

	reply, err := cmd.Handle(player, parts)
	if err != nil {
		slog.Error("command failed",
			"player", player.Name(),
			"command", text,
			"error", err)
		return fmt.Sprintf("Command error: %s", err), true
	}
	return reply, true
}

// CommandCount returns number of registered command names.
func (h *Handler) CommandCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cmds)
}
