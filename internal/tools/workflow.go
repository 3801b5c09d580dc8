package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/alexschlessinger/pollytool/llm"
	"github.com/alexschlessinger/pollytool/messages"
	"github.com/google/jsonschema-go/jsonschema"

	"parley/internal/config"
	"parley/internal/core"
)

// workflowPrompts fixes the system prompt per workflow type.
var workflowPrompts = map[string]string{
	"analysis":       "You are an analysis assistant. Examine the provided input carefully and produce a structured, factual analysis. Point out patterns, anomalies and conclusions the data supports.",
	"summarization":  "You are a summarization assistant. Produce a concise summary of the provided input that preserves the key points and omits filler. Do not add information that is not in the input.",
	"generation":     "You are a content generation assistant. Generate the requested content from the instructions and input provided. Follow the instructions exactly.",
	"classification": "You are a classification assistant. Assign the provided input to the most fitting category per the instructions and explain the decision briefly.",
}

// WorkflowTool runs a single delegated exchange against the completion
// endpoint: one system prompt picked by workflow type, one user message,
// no tools, no history.
type WorkflowTool struct {
	BaseTool
	cfg *config.Configuration
	sys core.System
}

func NewWorkflowTool(cfg *config.Configuration, sys core.System) *WorkflowTool {
	return &WorkflowTool{cfg: cfg, sys: sys}
}

func (t *WorkflowTool) GetName() string {
	return "remote_workflow"
}

func (t *WorkflowTool) GetSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:       "remote_workflow",
		Description: "Delegate a task to a remote AI workflow. Supported workflow types: " + strings.Join(workflowTypes(), ", "),
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"workflow_type": {
				Type:        "string",
				Description: "One of: " + strings.Join(workflowTypes(), ", "),
			},
			"input_data": {
				Type:        "string",
				Description: "The data the workflow operates on",
			},
			"instructions": {
				Type:        "string",
				Description: "Optional extra directions for the workflow",
			},
		},
		Required: []string{"workflow_type", "input_data"},
	}
}

func (t *WorkflowTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	workflowType, _ := args["workflow_type"].(string)
	prompt, ok := workflowPrompts[workflowType]
	if !ok {
		return "", fmt.Errorf("unknown workflow_type %q, must be one of: %s", workflowType, strings.Join(workflowTypes(), ", "))
	}

	inputData, _ := args["input_data"].(string)
	if inputData == "" {
		return "", fmt.Errorf("input_data must be a non-empty string")
	}
	instructions, _ := args["instructions"].(string)

	content := inputData
	if instructions != "" {
		content = instructions + "\n\n" + inputData
	}

	req := &llm.CompletionRequest{
		Timeout:     t.cfg.API.Timeout,
		Model:       t.cfg.ModelSpec(),
		MaxTokens:   t.cfg.Model.MaxTokens,
		Temperature: t.cfg.Model.Temperature,
		Messages: []messages.ChatMessage{
			{Role: messages.MessageRoleSystem, Content: prompt},
			{Role: messages.MessageRoleUser, Content: content},
		},
	}
	switch t.cfg.Model.Provider {
	case "ollama":
		req.BaseURL = t.cfg.API.OllamaURL
	case "openai":
		req.BaseURL = t.cfg.API.OpenAIURL
	}

	start := time.Now()
	result, err := t.collect(ctx, req)
	if err != nil {
		return "", fmt.Errorf("workflow %s failed: %w", workflowType, err)
	}

	slog.Debug("workflow complete",
		"workflow_type", workflowType,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out, err := json.Marshal(map[string]string{
		"workflow_type": workflowType,
		"result":        result,
	})
	if err != nil {
		return "", fmt.Errorf("encode workflow result: %w", err)
	}
	return string(out), nil
}

// collect drains a completion stream into the final message content.
func (t *WorkflowTool) collect(ctx context.Context, req *llm.CompletionRequest) (string, error) {
	eventChan := t.sys.GetLLM().ChatCompletionStream(ctx, req, &llm.SimpleProcessor{})

	var content strings.Builder
	var final *messages.ChatMessage
	for event := range eventChan {
		switch event.Type {
		case messages.EventTypeContent:
			content.WriteString(event.Content)
		case messages.EventTypeComplete:
			final = event.Message
		case messages.EventTypeError:
			if event.Error != nil {
				return "", event.Error
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if final != nil && final.Content != "" {
		return final.Content, nil
	}
	return content.String(), nil
}

func workflowTypes() []string {
	names := make([]string, 0, len(workflowPrompts))
	for name := range workflowPrompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
