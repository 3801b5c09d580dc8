package commands

import (
	"fmt"
	"path"
	"strings"

	"parley/internal/core"
)

// ToolsCommand handles the /tools command for inspecting and managing
// the tool registry
type ToolsCommand struct{}

func (c *ToolsCommand) Name() string  { return "/tools" }
func (c *ToolsCommand) Usage() string { return "/tools [add <path>|remove <name>] - list or manage tools" }

func (c *ToolsCommand) Execute(ctx core.ChatContextInterface) {
	args := ctx.GetArgs()

	if len(args) < 2 {
		c.listTools(ctx)
		return
	}

	subcommand := args[1]
	rest := ""
	if len(args) > 2 {
		rest = strings.Join(args[2:], " ")
	}

	switch subcommand {
	case "add":
		c.addTool(ctx, rest)
	case "remove":
		c.removeTool(ctx, rest)
	default:
		ctx.Reply("Usage: /tools [add|remove] <args>")
	}
}

func (c *ToolsCommand) listTools(ctx core.ChatContextInterface) {
	registry := ctx.GetSystem().GetToolRegistry()
	allTools := registry.All()

	if len(allTools) == 0 {
		ctx.Reply("No tools loaded")
		return
	}

	var lines []string
	for _, tool := range allTools {
		desc := ""
		if schema := tool.GetSchema(); schema != nil {
			desc = schema.Description
		}
		if desc != "" {
			lines = append(lines, fmt.Sprintf("%s - %s", tool.GetName(), desc))
		} else {
			lines = append(lines, tool.GetName())
		}
	}

	ctx.Reply("Tools:\n" + strings.Join(lines, "\n"))
}

func (c *ToolsCommand) addTool(ctx core.ChatContextInterface, toolPath string) {
	if toolPath == "" {
		ctx.Reply("Usage: /tools add <path>")
		return
	}

	registry := ctx.GetSystem().GetToolRegistry()
	_, err := registry.LoadToolAuto(toolPath)
	if err != nil {
		ctx.Reply(fmt.Sprintf("Failed: %v", err))
	} else {
		ctx.Reply(fmt.Sprintf("Added tool: %s", toolPath))
	}
}

func (c *ToolsCommand) removeTool(ctx core.ChatContextInterface, pattern string) {
	if pattern == "" {
		ctx.Reply("Usage: /tools remove <name or pattern>")
		return
	}

	registry := ctx.GetSystem().GetToolRegistry()

	if strings.Contains(pattern, "*") {
		var removed []string
		for _, tool := range registry.All() {
			name := tool.GetName()
			matched, _ := path.Match(pattern, name)
			if matched {
				registry.Remove(name)
				removed = append(removed, name)
			}
		}

		if len(removed) > 0 {
			ctx.Reply(fmt.Sprintf("Removed %d tools: %s", len(removed), strings.Join(removed, ", ")))
		} else {
			ctx.Reply(fmt.Sprintf("No tools matched pattern: %s", pattern))
		}
	} else {
		if _, exists := registry.Get(pattern); !exists {
			ctx.Reply(fmt.Sprintf("Not found: %s", pattern))
		} else {
			registry.Remove(pattern)
			ctx.Reply(fmt.Sprintf("Removed: %s", pattern))
		}
	}
}
