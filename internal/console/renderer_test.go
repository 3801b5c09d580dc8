package console

import (
	"bytes"
	"strings"
	"testing"

	mocktest "parley/internal/testing"
)

func TestRendererPlainStreaming(t *testing.T) {
	var buf bytes.Buffer
	cfg := mocktest.DefaultTestConfig()
	cfg.Chat.Markdown = false
	r := NewRenderer(&buf, cfg)

	r.AssistantText("hel")
	r.AssistantText("lo")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("chunks were not streamed, output = %q", buf.String())
	}

	r.AssistantDone()
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("expected trailing newline after the message")
	}
}

func TestRendererMarkdownBuffersUntilDone(t *testing.T) {
	var buf bytes.Buffer
	cfg := mocktest.DefaultTestConfig()
	cfg.Chat.Markdown = true
	r := NewRenderer(&buf, cfg)

	r.AssistantText("# heading")
	if strings.Contains(buf.String(), "heading") {
		t.Error("markdown mode should buffer until the message completes")
	}

	r.AssistantDone()
	if !strings.Contains(buf.String(), "heading") {
		t.Errorf("rendered output missing content: %q", buf.String())
	}
}

func TestRendererEmptyMessageRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	cfg := mocktest.DefaultTestConfig()
	cfg.Chat.Markdown = true
	r := NewRenderer(&buf, cfg)

	r.AssistantDone()
	if buf.Len() != 0 {
		t.Errorf("empty message produced output: %q", buf.String())
	}
}

func TestRendererToolStatusGated(t *testing.T) {
	var buf bytes.Buffer
	cfg := mocktest.DefaultTestConfig()
	cfg.Chat.ShowToolStatus = false
	r := NewRenderer(&buf, cfg)

	r.ToolIssued("call_1", "web_search", `{"query":"x"}`)
	r.ToolCompleted("call_1", "web_search", "{}", false)
	if buf.Len() != 0 {
		t.Errorf("tool lines shown despite showtoolstatus=false: %q", buf.String())
	}

	cfg.Chat.ShowToolStatus = true
	r = NewRenderer(&buf, cfg)
	r.ToolIssued("call_1", "web_search", `{"query":"x"}`)
	if !strings.Contains(buf.String(), "web_search") {
		t.Errorf("tool line missing: %q", buf.String())
	}
}

func TestRendererStatusAndError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, mocktest.DefaultTestConfig())

	r.Status("turn paused")
	r.Error("something broke")

	out := buf.String()
	if !strings.Contains(out, "turn paused") {
		t.Errorf("status missing: %q", out)
	}
	if !strings.Contains(out, "something broke") {
		t.Errorf("error missing: %q", out)
	}
}
