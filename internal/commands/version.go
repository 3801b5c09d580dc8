package commands

import (
	"parley/internal/core"
)

// VersionCommand handles the /version command
type VersionCommand struct {
	Version string
}

func (c *VersionCommand) Name() string  { return "/version" }
func (c *VersionCommand) Usage() string { return "/version - show the version" }

func (c *VersionCommand) Execute(ctx core.ChatContextInterface) {
	name := ctx.GetConfig().Chat.Name
	ctx.Reply(name + " " + c.Version)
}
