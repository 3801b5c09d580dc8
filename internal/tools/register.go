package tools

import (
	"log/slog"

	"github.com/alexschlessinger/pollytool/tools"

	"parley/internal/config"
	"parley/internal/core"
)

// RegisterAll registers the built-in tools as native tools with polly's
// registry and loads them so they are advertised to the model.
func RegisterAll(registry *tools.ToolRegistry, cfg *config.Configuration, sys core.System) {
	registry.RegisterNative("web_search", func() tools.Tool {
		return NewSearchTool(cfg.Search)
	})
	registry.RegisterNative("remote_workflow", func() tools.Tool {
		return NewWorkflowTool(cfg, sys)
	})
	registry.RegisterNative("code_eval", func() tools.Tool {
		return NewEvalTool()
	})

	for _, name := range []string{"web_search", "remote_workflow", "code_eval"} {
		if _, err := registry.LoadToolAuto(name); err != nil {
			slog.Warn("failed to load builtin tool", "tool", name, "error", err)
		}
	}
}
