package commands

import (
	"strings"
	"testing"

	mocktest "parley/internal/testing"
)

func TestHelpCommand_ListsRegisteredCommands(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&SetCommand{})
	registry.Register(&GetCommand{})
	registry.Register(&ProviderCommand{})
	helpCmd := NewHelpCommand(registry)
	registry.Register(helpCmd)

	ctx := mocktest.NewMockContext().WithArgs("/help")
	helpCmd.Execute(ctx)

	if ctx.ReplyCount() != 1 {
		t.Fatalf("expected 1 reply, got %d", ctx.ReplyCount())
	}

	reply := ctx.LastReply()
	for _, want := range []string{"/set", "/get", "/provider", "/help"} {
		if !strings.Contains(reply, want) {
			t.Errorf("help should list %s, got: %s", want, reply)
		}
	}
	if !strings.Contains(reply, "anything else is sent to the model") {
		t.Errorf("help should explain the default, got: %s", reply)
	}
}

func TestHelpCommand_SkipsCommandsWithoutUsage(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&ChatCommand{})
	helpCmd := NewHelpCommand(registry)

	ctx := mocktest.NewMockContext().WithArgs("/help")
	helpCmd.Execute(ctx)

	lines := strings.Split(ctx.LastReply(), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == "" && line != lines[len(lines)-1] {
			t.Errorf("help contains a blank usage line: %q", ctx.LastReply())
		}
	}
}
