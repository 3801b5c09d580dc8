package core

import (
	"context"
	"log/slog"

	"github.com/alexschlessinger/pollytool/llm"
	"github.com/alexschlessinger/pollytool/messages"
	"github.com/alexschlessinger/pollytool/sessions"
	"github.com/alexschlessinger/pollytool/tools"

	"parley/internal/config"
)

// Responder is where replies and status lines land, normally the console
// renderer.
type Responder interface {
	Reply(string)
	Status(string)
	Error(string)
}

// ChatContextInterface provides all context needed for handling one line
// of user input, a chat turn or a slash command.
type ChatContextInterface interface {
	context.Context
	Responder

	// Input methods
	GetCommand() string
	GetArgs() []string
	GetInput() string

	// Runtime methods
	GetSession() sessions.Session
	GetConfig() *config.Configuration
	GetSystem() System
	GetGate() *Gate
	GetLogger() *slog.Logger
}

// LLM is the completion client surface the rest of the program depends
// on. pollytool's MultiPass satisfies it.
type LLM interface {
	ChatCompletionStream(ctx context.Context, req *llm.CompletionRequest, processor llm.EventStreamProcessor) <-chan *messages.StreamEvent
}

type System interface {
	GetToolRegistry() *tools.ToolRegistry
	GetSessionStore() sessions.SessionStore
	GetLLM() LLM
	UpdateLLM(config.APIConfig) error
}
