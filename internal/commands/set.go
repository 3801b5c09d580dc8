package commands

import (
	"fmt"
	"strings"

	"parley/internal/core"
)

// SetCommand handles the /set command for configuration changes.
// Changes are written back to the config file so they survive restarts.
type SetCommand struct{}

func (c *SetCommand) Name() string  { return "/set" }
func (c *SetCommand) Usage() string { return "/set <key> <value> - change a configuration value" }

func (c *SetCommand) Execute(ctx core.ChatContextInterface) {
	keys := getConfigKeys()
	if len(ctx.GetArgs()) < 3 {
		ctx.Reply(fmt.Sprintf("Usage: /set <key> <value>. Available keys: %s", strings.Join(keys, ", ")))
		return
	}

	param, v := ctx.GetArgs()[1], ctx.GetArgs()[2:]
	value := strings.Join(v, " ")
	cfg := ctx.GetConfig()

	ctx.GetLogger().Debug("config change requested", "param", param, "value", value)

	if param == "provider" {
		switchProvider(ctx, value)
		return
	}

	field, ok := configFields[param]
	if !ok {
		ctx.Reply(fmt.Sprintf("Unknown key. Available keys: %s", strings.Join(keys, ", ")))
		return
	}

	if err := field.setter(cfg, value); err != nil {
		ctx.Reply(err.Error())
		return
	}

	// A credential or URL change invalidates the completion client
	if field.touchesLLM {
		if err := ctx.GetSystem().UpdateLLM(*cfg.API); err != nil {
			ctx.GetLogger().Error("llm update failed", "error", err)
			ctx.Error("Configuration saved, but failed to update completion client")
		}
	}

	if err := cfg.Save(); err != nil {
		ctx.GetLogger().Error("config save failed", "error", err)
		ctx.Error(fmt.Sprintf("Failed to save configuration: %v", err))
	}

	ctx.Reply(fmt.Sprintf("%s set to: %s", param, field.getter(cfg)))
}
