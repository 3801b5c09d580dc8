package commands

import (
	"fmt"
	"strings"

	"parley/internal/core"
)

// GetCommand handles the /get command for reading configuration
type GetCommand struct{}

func (c *GetCommand) Name() string  { return "/get" }
func (c *GetCommand) Usage() string { return "/get <key> - show a configuration value" }

func (c *GetCommand) Execute(ctx core.ChatContextInterface) {
	keys := getConfigKeys()
	if len(ctx.GetArgs()) < 2 {
		ctx.Reply(fmt.Sprintf("Usage: /get <key>. Available keys: %s", strings.Join(keys, ", ")))
		return
	}

	param := ctx.GetArgs()[1]
	cfg := ctx.GetConfig()

	if param == "provider" {
		ctx.Reply(fmt.Sprintf("provider: %s (model %s)", cfg.Model.Provider, cfg.Model.Model))
		return
	}

	field, ok := configFields[param]
	if !ok {
		ctx.Reply(fmt.Sprintf("Unknown key %s. Available keys: %s", param, strings.Join(keys, ", ")))
		return
	}

	ctx.Reply(fmt.Sprintf("%s: %s", param, field.getter(cfg)))
}
