package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/alexschlessinger/pollytool/tools"
	"github.com/google/jsonschema-go/jsonschema"

	mocktest "parley/internal/testing"
)

// mockTool is a minimal registerable tool for registry tests
type mockTool struct {
	name string
}

func (m *mockTool) SetContext(ctx any) {}
func (m *mockTool) GetType() string    { return "native" }
func (m *mockTool) GetSource() string  { return "builtin" }
func (m *mockTool) GetName() string    { return m.name }

func (m *mockTool) GetSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:       m.name,
		Description: "a mock tool",
		Type:        "object",
	}
}

func (m *mockTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	return "ok", nil
}

func loadMockTool(t *testing.T, sys *mocktest.MockSystem, name string) {
	t.Helper()
	sys.ToolRegistry.RegisterNative(name, func() tools.Tool {
		return &mockTool{name: name}
	})
	if _, err := sys.ToolRegistry.LoadToolAuto(name); err != nil {
		t.Fatalf("load tool %s: %v", name, err)
	}
}

func TestToolsCommand_ListEmpty(t *testing.T) {
	mockSys := mocktest.NewMockSystem()
	ctx := mocktest.NewMockContext().WithSystem(mockSys).WithArgs("/tools")

	(&ToolsCommand{}).Execute(ctx)

	if ctx.ReplyCount() != 1 {
		t.Fatalf("expected 1 reply, got %d", ctx.ReplyCount())
	}
	if !strings.Contains(ctx.LastReply(), "No tools") {
		t.Errorf("expected 'No tools' message, got: %s", ctx.LastReply())
	}
}

func TestToolsCommand_ListTools(t *testing.T) {
	mockSys := mocktest.NewMockSystem()
	loadMockTool(t, mockSys, "test_tool")

	ctx := mocktest.NewMockContext().WithSystem(mockSys).WithArgs("/tools")
	(&ToolsCommand{}).Execute(ctx)

	if !ctx.HasReply("test_tool") {
		t.Errorf("expected tool list to contain test_tool, got: %s", ctx.LastReply())
	}
	if !ctx.HasReply("a mock tool") {
		t.Errorf("expected tool description in list, got: %s", ctx.LastReply())
	}
}

func TestToolsCommand_RemoveExact(t *testing.T) {
	mockSys := mocktest.NewMockSystem()
	loadMockTool(t, mockSys, "test_tool")

	ctx := mocktest.NewMockContext().WithSystem(mockSys).WithArgs("/tools", "remove", "test_tool")
	(&ToolsCommand{}).Execute(ctx)

	if !ctx.HasReply("Removed: test_tool") {
		t.Errorf("replies = %v", ctx.Replies)
	}
	if _, exists := mockSys.ToolRegistry.Get("test_tool"); exists {
		t.Error("tool still present after remove")
	}
}

func TestToolsCommand_RemoveGlob(t *testing.T) {
	mockSys := mocktest.NewMockSystem()
	loadMockTool(t, mockSys, "alpha_one")
	loadMockTool(t, mockSys, "alpha_two")
	loadMockTool(t, mockSys, "beta")

	ctx := mocktest.NewMockContext().WithSystem(mockSys).WithArgs("/tools", "remove", "alpha_*")
	(&ToolsCommand{}).Execute(ctx)

	if !ctx.HasReply("Removed 2 tools") {
		t.Errorf("replies = %v", ctx.Replies)
	}
	if _, exists := mockSys.ToolRegistry.Get("beta"); !exists {
		t.Error("glob removed an unmatched tool")
	}
}

func TestToolsCommand_RemoveMissing(t *testing.T) {
	mockSys := mocktest.NewMockSystem()
	ctx := mocktest.NewMockContext().WithSystem(mockSys).WithArgs("/tools", "remove", "nonexistent")

	(&ToolsCommand{}).Execute(ctx)

	if !ctx.HasReply("Not found: nonexistent") {
		t.Errorf("replies = %v", ctx.Replies)
	}
}

func TestToolsCommand_UnknownSubcommand(t *testing.T) {
	mockSys := mocktest.NewMockSystem()
	ctx := mocktest.NewMockContext().WithSystem(mockSys).WithArgs("/tools", "frobnicate")

	(&ToolsCommand{}).Execute(ctx)

	if !ctx.HasReply("Usage: /tools") {
		t.Errorf("replies = %v", ctx.Replies)
	}
}
