package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alexschlessinger/pollytool/messages"

	mocktest "parley/internal/testing"
)

func newWorkflowTool(llm *mocktest.MockLLM) *WorkflowTool {
	sys := mocktest.NewMockSystem()
	sys.LLM = llm
	return NewWorkflowTool(mocktest.DefaultTestConfig(), sys)
}

func TestWorkflowRejectsUnknownType(t *testing.T) {
	tool := newWorkflowTool(&mocktest.MockLLM{})
	_, err := tool.Execute(context.Background(), map[string]any{
		"workflow_type": "divination",
		"input_data":    "tea leaves",
	})
	if err == nil {
		t.Fatal("expected error for unknown workflow type")
	}
	for _, name := range []string{"analysis", "classification", "generation", "summarization"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should list %q, got %q", name, err.Error())
		}
	}
}

func TestWorkflowRequiresInputData(t *testing.T) {
	tool := newWorkflowTool(&mocktest.MockLLM{})
	_, err := tool.Execute(context.Background(), map[string]any{
		"workflow_type": "analysis",
	})
	if err == nil {
		t.Fatal("expected error for missing input_data")
	}
}

func TestWorkflowBuildsDelegatedRequest(t *testing.T) {
	mock := &mocktest.MockLLM{
		Turns: [][]*messages.StreamEvent{mocktest.TextTurn("three anomalies found")},
	}
	tool := newWorkflowTool(mock)

	out, err := tool.Execute(context.Background(), map[string]any{
		"workflow_type": "analysis",
		"instructions":  "find anomalies",
		"input_data":    "1, 2, 3, 900",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.LastRequest()
	if req == nil {
		t.Fatal("no request recorded")
	}
	if len(req.Messages) != 2 {
		t.Fatalf("got %d messages, want system + user", len(req.Messages))
	}
	if req.Messages[0].Role != messages.MessageRoleSystem ||
		!strings.Contains(req.Messages[0].Content, "analysis assistant") {
		t.Errorf("system message = %+v", req.Messages[0])
	}
	if req.Messages[1].Content != "find anomalies\n\n1, 2, 3, 900" {
		t.Errorf("user message = %q", req.Messages[1].Content)
	}
	if len(req.Tools) != 0 {
		t.Error("delegated request must not advertise tools")
	}
	if req.BaseURL != "http://localhost:11434" {
		t.Errorf("BaseURL = %q, want the ollama endpoint", req.BaseURL)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload["workflow_type"] != "analysis" {
		t.Errorf("workflow_type = %q", payload["workflow_type"])
	}
	if payload["result"] != "three anomalies found" {
		t.Errorf("result = %q", payload["result"])
	}
}

func TestWorkflowPromptPerType(t *testing.T) {
	for workflowType, want := range map[string]string{
		"summarization":  "summarization assistant",
		"generation":     "generation assistant",
		"classification": "classification assistant",
	} {
		mock := &mocktest.MockLLM{
			Turns: [][]*messages.StreamEvent{mocktest.TextTurn("ok")},
		}
		tool := newWorkflowTool(mock)

		_, err := tool.Execute(context.Background(), map[string]any{
			"workflow_type": workflowType,
			"input_data":    "some input",
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", workflowType, err)
		}
		if got := mock.LastRequest().Messages[0].Content; !strings.Contains(got, want) {
			t.Errorf("%s prompt = %q, want mention of %q", workflowType, got, want)
		}
	}
}

func TestWorkflowUsesConfiguredEndpoint(t *testing.T) {
	mock := &mocktest.MockLLM{
		Turns: [][]*messages.StreamEvent{mocktest.TextTurn("ok")},
	}
	sys := mocktest.NewMockSystem()
	sys.LLM = mock

	cfg := mocktest.DefaultTestConfig()
	cfg.Model.Provider = "openai"
	cfg.Model.Model = "gpt-4o"
	cfg.API.OpenAIKey = "sk-test"
	cfg.API.OpenAIURL = "http://proxy.internal:8080/v1"
	tool := NewWorkflowTool(cfg, sys)

	_, err := tool.Execute(context.Background(), map[string]any{
		"workflow_type": "summarization",
		"input_data":    "a long report",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.LastRequest().BaseURL; got != "http://proxy.internal:8080/v1" {
		t.Errorf("BaseURL = %q, want the configured openai endpoint", got)
	}
}

func TestWorkflowRemoteFailure(t *testing.T) {
	mock := &mocktest.MockLLM{
		Turns: [][]*messages.StreamEvent{mocktest.ErrorTurn(errors.New("model offline"))},
	}
	tool := newWorkflowTool(mock)

	_, err := tool.Execute(context.Background(), map[string]any{
		"workflow_type": "generation",
		"input_data":    "write a haiku about rivers",
	})
	if err == nil || !strings.Contains(err.Error(), "model offline") {
		t.Errorf("expected wrapped remote failure, got %v", err)
	}
}
