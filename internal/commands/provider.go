package commands

import (
	"fmt"
	"strings"

	"parley/internal/config"
	"parley/internal/core"
)

// ProviderCommand lists the supported completion providers and switches
// between them. A switch resets the model to the provider's default and
// persists both.
type ProviderCommand struct{}

func (c *ProviderCommand) Name() string  { return "/provider" }
func (c *ProviderCommand) Usage() string { return "/provider [name] - list providers or switch to one" }

func (c *ProviderCommand) Execute(ctx core.ChatContextInterface) {
	args := ctx.GetArgs()
	if len(args) < 2 {
		cfg := ctx.GetConfig()
		var lines []string
		for _, name := range config.ProviderNames() {
			marker := "  "
			if name == cfg.Model.Provider {
				marker = "* "
			}
			lines = append(lines, fmt.Sprintf("%s%s (default model %s)", marker, name, config.Providers[name]))
		}
		ctx.Reply("Providers:\n" + strings.Join(lines, "\n"))
		return
	}

	switchProvider(ctx, strings.ToLower(args[1]))
}

// switchProvider is shared by /provider and /set provider.
func switchProvider(ctx core.ChatContextInterface, name string) {
	cfg := ctx.GetConfig()

	defaultModel, ok := config.Providers[name]
	if !ok {
		ctx.Reply(fmt.Sprintf("Unknown provider %q. Available: %s", name, strings.Join(config.ProviderNames(), ", ")))
		return
	}

	cfg.Model.Provider = name
	cfg.Model.Model = defaultModel

	if err := ctx.GetSystem().UpdateLLM(*cfg.API); err != nil {
		ctx.GetLogger().Error("llm update failed", "error", err)
		ctx.Error("Provider switched, but failed to update completion client")
	}

	if err := cfg.Save(); err != nil {
		ctx.GetLogger().Error("config save failed", "error", err)
		ctx.Error(fmt.Sprintf("Failed to save configuration: %v", err))
	}

	if name != "ollama" && cfg.CredentialFor(name) == "" {
		ctx.Status(fmt.Sprintf("no API key configured for %s, set it with /set %skey <key>", name, name))
	}

	ctx.Reply(fmt.Sprintf("provider set to: %s (model %s)", name, defaultModel))
}
