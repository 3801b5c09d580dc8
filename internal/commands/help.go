package commands

import (
	"sort"
	"strings"

	"parley/internal/core"
)

// HelpCommand handles the /help command
type HelpCommand struct {
	registry *Registry
}

// NewHelpCommand creates a help command that can list registered commands
func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

func (c *HelpCommand) Name() string  { return "/help" }
func (c *HelpCommand) Usage() string { return "/help - list available commands" }

func (c *HelpCommand) Execute(ctx core.ChatContextInterface) {
	cmds := c.registry.All()

	var lines []string
	for _, cmd := range cmds {
		if usage := cmd.Usage(); usage != "" {
			lines = append(lines, usage)
		}
	}
	sort.Strings(lines)
	lines = append(lines, "anything else is sent to the model")

	ctx.Reply("Commands:\n" + strings.Join(lines, "\n"))
}
