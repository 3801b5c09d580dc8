package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexschlessinger/pollytool/messages"
	"github.com/alexschlessinger/pollytool/tools"

	"parley/internal/core"
)

// Dispatcher executes tool calls one at a time. It never returns an
// error: every failure mode becomes a JSON error payload so the model
// always receives exactly one result per call.
type Dispatcher struct {
	registry *tools.ToolRegistry
	sink     EventSink
	logger   *slog.Logger
}

func NewDispatcher(registry *tools.ToolRegistry, sink EventSink, logger *slog.Logger) *Dispatcher {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{registry: registry, sink: sink, logger: logger}
}

// Execute runs one tool call and returns its result payload.
func (d *Dispatcher) Execute(ctx context.Context, call messages.ChatMessageToolCall) string {
	d.sink.ToolIssued(call.ID, call.Name, call.Arguments)

	tool, exists := d.registry.Get(call.Name)
	if !exists {
		d.logger.Warn("unknown tool requested", "tool", call.Name)
		return d.fail(call, fmt.Sprintf("Unknown tool: %s", call.Name))
	}

	var args map[string]any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			d.logger.Warn("malformed tool arguments", "tool", call.Name, "error", err)
			return d.fail(call, fmt.Sprintf("Error parsing arguments: %v", err))
		}
	}

	toolLogger := core.WithTool(d.logger, call.Name)
	toolLogger.Info("executing tool", "call_id", call.ID)

	start := time.Now()
	result, err := tool.Execute(ctx, args)
	duration := time.Since(start)

	if err != nil {
		toolLogger.Error("tool execution failed",
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return d.fail(call, err.Error())
	}

	preview := result
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	toolLogger.Info("tool execution completed",
		"duration_ms", duration.Milliseconds(),
		"result_size", len(result),
		"result", preview,
	)

	d.sink.ToolCompleted(call.ID, call.Name, result, payloadReportsFailure(result))
	return result
}

// payloadReportsFailure detects tools that report failure inside an
// otherwise successful result, like code_eval's success flag.
func payloadReportsFailure(result string) bool {
	var envelope struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal([]byte(result), &envelope); err != nil {
		return false
	}
	return envelope.Success != nil && !*envelope.Success
}

// fail wraps a failure message in the error payload the model expects.
func (d *Dispatcher) fail(call messages.ChatMessageToolCall, msg string) string {
	payload, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		payload = []byte(`{"error":"internal error"}`)
	}
	d.sink.ToolCompleted(call.ID, call.Name, string(payload), true)
	return string(payload)
}
