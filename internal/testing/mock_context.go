package testing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alexschlessinger/pollytool/sessions"

	"parley/internal/config"
	"parley/internal/core"
)

// MockChatContext implements core.ChatContextInterface for testing
type MockChatContext struct {
	context.Context

	// Configurable values
	Args  []string
	Input string

	// Recorded calls (for assertions)
	Replies  []string
	Statuses []string
	Errors   []string

	// Injected dependencies
	session sessions.Session
	cfg     *config.Configuration
	sys     core.System
	gate    *core.Gate
	logger  *slog.Logger
}

// Verify MockChatContext implements core.ChatContextInterface
var _ core.ChatContextInterface = (*MockChatContext)(nil)

// NewMockContext creates a new MockChatContext with sensible defaults
func NewMockContext() *MockChatContext {
	return &MockChatContext{
		Context: context.Background(),
		Args:    []string{},
		cfg:     DefaultTestConfig(),
		logger:  slog.Default(),
	}
}

// Builder methods for fluent test setup

// WithContext sets a custom context (for timeout/cancellation testing)
func (m *MockChatContext) WithContext(ctx context.Context) *MockChatContext {
	m.Context = ctx
	return m
}

// WithArgs sets the parsed arguments and input line
func (m *MockChatContext) WithArgs(args ...string) *MockChatContext {
	m.Args = args
	m.Input = strings.Join(args, " ")
	return m
}

// WithInput sets the raw input line
func (m *MockChatContext) WithInput(input string) *MockChatContext {
	m.Input = input
	m.Args = strings.Fields(input)
	return m
}

// WithConfig sets the configuration
func (m *MockChatContext) WithConfig(cfg *config.Configuration) *MockChatContext {
	m.cfg = cfg
	return m
}

// WithSystem sets the system
func (m *MockChatContext) WithSystem(sys core.System) *MockChatContext {
	m.sys = sys
	return m
}

// WithSession sets the session
func (m *MockChatContext) WithSession(session sessions.Session) *MockChatContext {
	m.session = session
	return m
}

// WithGate sets the active turn gate
func (m *MockChatContext) WithGate(gate *core.Gate) *MockChatContext {
	m.gate = gate
	return m
}

// Input methods

func (m *MockChatContext) GetCommand() string {
	if len(m.Args) == 0 {
		return ""
	}
	return strings.ToLower(m.Args[0])
}

func (m *MockChatContext) GetArgs() []string {
	return m.Args
}

func (m *MockChatContext) GetInput() string {
	return m.Input
}

// Responder methods

func (m *MockChatContext) Reply(msg string) {
	m.Replies = append(m.Replies, msg)
}

func (m *MockChatContext) Status(msg string) {
	m.Statuses = append(m.Statuses, msg)
}

func (m *MockChatContext) Error(msg string) {
	m.Errors = append(m.Errors, msg)
}

// Runtime methods

func (m *MockChatContext) GetSession() sessions.Session {
	if m.session != nil {
		return m.session
	}
	if m.sys != nil {
		sess, _ := m.sys.GetSessionStore().Get("test")
		return sess
	}
	return nil
}

func (m *MockChatContext) GetConfig() *config.Configuration {
	return m.cfg
}

func (m *MockChatContext) GetSystem() core.System {
	return m.sys
}

func (m *MockChatContext) GetGate() *core.Gate {
	return m.gate
}

func (m *MockChatContext) GetLogger() *slog.Logger {
	return m.logger
}

// Assertion helpers

// HasReply checks if any reply contains the given substring
func (m *MockChatContext) HasReply(substring string) bool {
	for _, r := range m.Replies {
		if strings.Contains(r, substring) {
			return true
		}
	}
	return false
}

// HasStatus checks if any status line contains the given substring
func (m *MockChatContext) HasStatus(substring string) bool {
	for _, s := range m.Statuses {
		if strings.Contains(s, substring) {
			return true
		}
	}
	return false
}

// LastReply returns the last reply, or empty string if none
func (m *MockChatContext) LastReply() string {
	if len(m.Replies) == 0 {
		return ""
	}
	return m.Replies[len(m.Replies)-1]
}

// ReplyCount returns the number of replies
func (m *MockChatContext) ReplyCount() int {
	return len(m.Replies)
}
