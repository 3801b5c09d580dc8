package commands

import (
	"parley/internal/core"
)

// QuitCommand exits the console. Shutdown is provided by the console so
// a running turn gets cancelled before the program stops.
type QuitCommand struct {
	Shutdown func()
}

func (c *QuitCommand) Name() string  { return "/quit" }
func (c *QuitCommand) Usage() string { return "/quit - exit" }

func (c *QuitCommand) Execute(ctx core.ChatContextInterface) {
	if gate := ctx.GetGate(); gate != nil {
		gate.Cancel()
	}
	ctx.Status("bye")
	if c.Shutdown != nil {
		c.Shutdown()
	}
}
