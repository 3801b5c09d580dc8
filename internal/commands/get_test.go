package commands

import (
	"testing"

	mocktest "parley/internal/testing"
)

func TestGetCommand_UsageWithoutArgs(t *testing.T) {
	ctx := mocktest.NewMockContext().WithArgs("/get")
	(&GetCommand{}).Execute(ctx)

	if !ctx.HasReply("Usage: /get") {
		t.Errorf("replies = %v", ctx.Replies)
	}
}

func TestGetCommand_ReadsValue(t *testing.T) {
	ctx := mocktest.NewMockContext().WithArgs("/get", "model")
	(&GetCommand{}).Execute(ctx)

	if !ctx.HasReply("model: llama3.2") {
		t.Errorf("replies = %v", ctx.Replies)
	}
}

func TestGetCommand_Provider(t *testing.T) {
	ctx := mocktest.NewMockContext().WithArgs("/get", "provider")
	(&GetCommand{}).Execute(ctx)

	if !ctx.HasReply("provider: ollama (model llama3.2)") {
		t.Errorf("replies = %v", ctx.Replies)
	}
}

func TestGetCommand_MasksKeys(t *testing.T) {
	cfg := mocktest.DefaultTestConfig()
	cfg.API.OpenAIKey = "sk-supersecretkey"
	ctx := mocktest.NewMockContext().WithConfig(cfg).WithArgs("/get", "openaikey")

	(&GetCommand{}).Execute(ctx)

	if ctx.HasReply("sk-supersecretkey") {
		t.Errorf("reply leaked the key: %v", ctx.Replies)
	}
	if !ctx.HasReply("sk-s") {
		t.Errorf("expected masked prefix, got %v", ctx.Replies)
	}
}

func TestGetCommand_UnsetKeyShowsPlaceholder(t *testing.T) {
	ctx := mocktest.NewMockContext().WithArgs("/get", "anthropickey")
	(&GetCommand{}).Execute(ctx)

	if !ctx.HasReply("(not set)") {
		t.Errorf("replies = %v", ctx.Replies)
	}
}

func TestGetCommand_UnknownKey(t *testing.T) {
	ctx := mocktest.NewMockContext().WithArgs("/get", "bogus")
	(&GetCommand{}).Execute(ctx)

	if !ctx.HasReply("Unknown key") {
		t.Errorf("replies = %v", ctx.Replies)
	}
}
