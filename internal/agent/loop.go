package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexschlessinger/pollytool/llm"
	"github.com/alexschlessinger/pollytool/messages"
	"github.com/alexschlessinger/pollytool/sessions"

	"parley/internal/config"
	"parley/internal/core"
)

// Loop drives one chat turn: it relays the user message to the
// completion endpoint, executes requested tool calls in issue order,
// and repeats until the model answers without tools. The gate is
// consulted between steps so pause and cancel take effect at the next
// step boundary.
type Loop struct {
	cfg        *config.Configuration
	sys        core.System
	gate       *core.Gate
	sink       EventSink
	dispatcher *Dispatcher
	logger     *slog.Logger
}

func NewLoop(cfg *config.Configuration, sys core.System, gate *core.Gate, sink EventSink, logger *slog.Logger) *Loop {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		cfg:        cfg,
		sys:        sys,
		gate:       gate,
		sink:       sink,
		dispatcher: NewDispatcher(sys.GetToolRegistry(), sink, logger),
		logger:     logger,
	}
}

// Run processes one user message to completion. It returns nil when the
// model answers without tool calls, ErrCancelled on a cancelled turn,
// and a RemoteError or ConfigError on failure. Turn state only ever
// grows while the turn runs.
func (l *Loop) Run(ctx context.Context, session sessions.Session, input string) error {
	if err := l.checkCredentials(); err != nil {
		return err
	}

	start := time.Now()
	defer core.LogDuration(l.logger, "turn", start)

	session.AddMessage(messages.ChatMessage{
		Role:    messages.MessageRoleUser,
		Content: input,
	})

	for {
		if err := l.gate.Checkpoint(ctx); err != nil {
			return err
		}

		req := NewCompletionRequest(l.cfg, session, l.sys.GetToolRegistry().All())
		l.logger.Debug("requesting completion", "model", req.Model, "messages", len(req.Messages))

		msg, err := l.complete(ctx, req)
		if err != nil {
			return l.classify(ctx, err)
		}

		if err := l.gate.Checkpoint(ctx); err != nil {
			return err
		}

		// The assistant message is appended exactly once, tool calls and all
		session.AddMessage(msg)
		if msg.Content != "" {
			l.sink.AssistantDone()
		}

		if len(msg.ToolCalls) == 0 {
			return nil
		}

		l.logger.Debug("model requested tools", "count", len(msg.ToolCalls))

		for _, call := range msg.ToolCalls {
			if err := l.gate.Checkpoint(ctx); err != nil {
				return err
			}
			result := l.dispatcher.Execute(ctx, call)
			session.AddMessage(messages.ChatMessage{
				Role:       messages.MessageRoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}
}

// complete runs one completion round trip, streaming content chunks to
// the sink as they arrive.
func (l *Loop) complete(ctx context.Context, req *CompletionRequest) (messages.ChatMessage, error) {
	eventChan := l.sys.GetLLM().ChatCompletionStream(ctx, req, &llm.SimpleProcessor{})

	var content strings.Builder
	var final *messages.ChatMessage
	var streamErr error

	for event := range eventChan {
		switch event.Type {
		case messages.EventTypeContent:
			content.WriteString(event.Content)
			l.sink.AssistantText(event.Content)

		case messages.EventTypeToolCall:
			// Tool calls arrive with the complete message

		case messages.EventTypeComplete:
			if event.Message != nil {
				final = event.Message
			}

		case messages.EventTypeError:
			if event.Error != nil {
				streamErr = event.Error
			}
		}
	}

	if streamErr != nil {
		return messages.ChatMessage{}, streamErr
	}
	if err := ctx.Err(); err != nil {
		return messages.ChatMessage{}, err
	}
	if final == nil {
		return messages.ChatMessage{}, fmt.Errorf("stream ended without a completion")
	}

	msg := *final
	if msg.Content == "" {
		msg.Content = content.String()
	}
	return msg, nil
}

// classify maps a completion failure to the turn's error taxonomy:
// cancellation is a clean end, everything else is a remote failure.
func (l *Loop) classify(ctx context.Context, err error) error {
	if l.gate.State() == core.GateCancelled || errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return core.ErrCancelled
	}
	return &core.RemoteError{Model: l.cfg.ModelSpec(), Err: err}
}

// checkCredentials rejects the turn before any remote call when the
// selected provider has no usable credential.
func (l *Loop) checkCredentials() error {
	provider := l.cfg.Model.Provider
	if _, ok := config.Providers[provider]; !ok {
		return &core.ConfigError{
			Key:    "provider",
			Reason: fmt.Sprintf("unknown provider %q", provider),
		}
	}
	// Ollama is keyless, its URL has a default
	if provider != "ollama" && l.cfg.CredentialFor(provider) == "" {
		return &core.ConfigError{
			Key:    provider + "key",
			Reason: fmt.Sprintf("no API key configured for provider %q", provider),
		}
	}
	return nil
}
