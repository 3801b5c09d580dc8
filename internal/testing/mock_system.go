package testing

import (
	"context"
	"sync"
	"time"

	"github.com/alexschlessinger/pollytool/llm"
	"github.com/alexschlessinger/pollytool/messages"
	"github.com/alexschlessinger/pollytool/sessions"
	"github.com/alexschlessinger/pollytool/tools"

	"parley/internal/config"
	"parley/internal/core"
)

// MockLLM implements core.LLM for testing. Each scripted turn is the
// event stream returned by one ChatCompletionStream call, in order.
type MockLLM struct {
	mu       sync.Mutex
	Turns    [][]*messages.StreamEvent
	Requests []*llm.CompletionRequest
	Delay    time.Duration // delay between events (0 = immediate)
	Block    bool          // never emit, wait for ctx cancellation
}

// Verify MockLLM implements core.LLM
var _ core.LLM = (*MockLLM)(nil)

func (m *MockLLM) ChatCompletionStream(ctx context.Context, req *llm.CompletionRequest, _ llm.EventStreamProcessor) <-chan *messages.StreamEvent {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	var turn []*messages.StreamEvent
	if len(m.Turns) > 0 {
		turn = m.Turns[0]
		m.Turns = m.Turns[1:]
	}
	m.mu.Unlock()

	ch := make(chan *messages.StreamEvent, len(turn))
	go func() {
		defer close(ch)
		if m.Block {
			<-ctx.Done()
			return
		}
		for _, event := range turn {
			if m.Delay > 0 {
				select {
				case <-time.After(m.Delay):
				case <-ctx.Done():
					return
				}
			}
			select {
			case ch <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// CallCount returns how many completion requests were made
func (m *MockLLM) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// LastRequest returns the most recent completion request, or nil
func (m *MockLLM) LastRequest() *llm.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}

// TextTurn scripts a stream that sends text chunks and completes with
// an assistant message holding the concatenated text.
func TextTurn(chunks ...string) []*messages.StreamEvent {
	var events []*messages.StreamEvent
	full := ""
	for _, chunk := range chunks {
		full += chunk
		events = append(events, &messages.StreamEvent{
			Type:    messages.EventTypeContent,
			Content: chunk,
		})
	}
	events = append(events, &messages.StreamEvent{
		Type: messages.EventTypeComplete,
		Message: &messages.ChatMessage{
			Role:    messages.MessageRoleAssistant,
			Content: full,
		},
	})
	return events
}

// ToolTurn scripts a stream that completes with an assistant message
// carrying tool calls.
func ToolTurn(content string, calls ...messages.ChatMessageToolCall) []*messages.StreamEvent {
	var events []*messages.StreamEvent
	if content != "" {
		events = append(events, &messages.StreamEvent{
			Type:    messages.EventTypeContent,
			Content: content,
		})
	}
	events = append(events, &messages.StreamEvent{
		Type: messages.EventTypeComplete,
		Message: &messages.ChatMessage{
			Role:      messages.MessageRoleAssistant,
			Content:   content,
			ToolCalls: calls,
		},
	})
	return events
}

// ErrorTurn scripts a stream that fails.
func ErrorTurn(err error) []*messages.StreamEvent {
	return []*messages.StreamEvent{{
		Type:  messages.EventTypeError,
		Error: err,
	}}
}

// MockSystem implements core.System for testing
type MockSystem struct {
	ToolRegistry *tools.ToolRegistry
	SessionStore sessions.SessionStore
	LLM          core.LLM

	UpdateCalls []config.APIConfig
	UpdateErr   error
}

// NewMockSystem creates a MockSystem with sensible defaults
func NewMockSystem() *MockSystem {
	return &MockSystem{
		ToolRegistry: tools.NewToolRegistry([]tools.Tool{}),
		SessionStore: sessions.NewSyncMapSessionStore(&sessions.Metadata{
			MaxHistoryTokens: 16384,
			TTL:              time.Minute * 10,
			SystemPrompt:     "You are a test assistant.",
		}),
		LLM: &MockLLM{
			Turns: [][]*messages.StreamEvent{TextTurn("Hello from mock LLM")},
		},
	}
}

// GetToolRegistry implements core.System
func (m *MockSystem) GetToolRegistry() *tools.ToolRegistry {
	return m.ToolRegistry
}

// GetSessionStore implements core.System
func (m *MockSystem) GetSessionStore() sessions.SessionStore {
	return m.SessionStore
}

// GetLLM implements core.System
func (m *MockSystem) GetLLM() core.LLM {
	return m.LLM
}

// UpdateLLM implements core.System, recording the call
func (m *MockSystem) UpdateLLM(cfg config.APIConfig) error {
	m.UpdateCalls = append(m.UpdateCalls, cfg)
	return m.UpdateErr
}

// Verify MockSystem implements core.System
var _ core.System = (*MockSystem)(nil)
