package console

import (
	"log/slog"

	"github.com/alexschlessinger/pollytool/sessions"
	polly "github.com/alexschlessinger/pollytool/tools"

	"parley/internal/config"
	"parley/internal/core"
	"parley/internal/tools"
)

// NewSystem assembles the session store, the tool registry with the
// built-in tools, and the completion client.
func NewSystem(cfg *config.Configuration) (core.System, error) {
	sys := &core.SystemImpl{
		Store: sessions.NewSyncMapSessionStore(&sessions.Metadata{
			MaxHistoryTokens: cfg.Session.MaxHistoryTokens,
			TTL:              cfg.Session.TTL,
			SystemPrompt:     cfg.Chat.Prompt,
		}),
		Tools: polly.NewToolRegistry([]polly.Tool{}),
	}

	if err := sys.UpdateLLM(*cfg.API); err != nil {
		return nil, err
	}

	tools.RegisterAll(sys.Tools, cfg, sys)
	slog.Info("system ready",
		"provider", cfg.Model.Provider,
		"model", cfg.Model.Model,
		"tools", len(sys.Tools.All()))

	return sys, nil
}
