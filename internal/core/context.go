package core

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alexschlessinger/pollytool/sessions"
	"github.com/google/uuid"

	"parley/internal/config"
)

type ChatContext struct {
	context.Context
	Sys     System
	Session sessions.Session
	Config  *config.Configuration
	out     Responder
	gate    *Gate
	input   string
	args    []string
	logger  *slog.Logger
	turnID  string
}

var _ ChatContextInterface = (*ChatContext)(nil)

// NewTurnContext builds the context for one chat turn: a timeout-bound
// context, a fresh gate wired to its cancel, and turn state keyed by a
// new turn id. The caller releases the session and cancel when the turn
// ends.
func NewTurnContext(parent context.Context, cfg *config.Configuration, system System, out Responder, input string) (*ChatContext, context.CancelFunc, error) {
	timedctx, cancel := context.WithTimeout(parent, cfg.API.Timeout)

	turnID := uuid.NewString()[:8]

	ctx := &ChatContext{
		Context: timedctx,
		Config:  cfg,
		Sys:     system,
		out:     out,
		gate:    NewGate(cancel),
		input:   input,
		args:    strings.Fields(input),
		turnID:  turnID,
		logger:  WithTurn(turnID),
	}

	session, err := system.GetSessionStore().Get(turnID)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	ctx.Session = session

	return ctx, cancel, nil
}

// NewCommandContext builds the lightweight context slash commands run
// under. gate is the gate of the in-flight turn, nil when idle.
func NewCommandContext(parent context.Context, cfg *config.Configuration, system System, out Responder, args []string, gate *Gate) *ChatContext {
	return &ChatContext{
		Context: parent,
		Config:  cfg,
		Sys:     system,
		out:     out,
		gate:    gate,
		input:   strings.Join(args, " "),
		args:    args,
		logger:  slog.Default(),
	}
}

func (c *ChatContext) GetSystem() System {
	return c.Sys
}

func (c *ChatContext) GetConfig() *config.Configuration {
	return c.Config
}

func (c *ChatContext) GetLogger() *slog.Logger {
	return c.logger
}

func (c *ChatContext) GetSession() sessions.Session {
	return c.Session
}

func (c *ChatContext) GetGate() *Gate {
	return c.gate
}

func (c *ChatContext) GetArgs() []string {
	return c.args
}

func (c *ChatContext) GetInput() string {
	return c.input
}

func (c *ChatContext) GetTurnID() string {
	return c.turnID
}

func (c *ChatContext) GetCommand() string {
	if len(c.args) == 0 {
		return ""
	}
	return strings.ToLower(c.args[0])
}

func (c *ChatContext) Reply(message string) {
	c.out.Reply(message)
}

func (c *ChatContext) Status(message string) {
	c.out.Status(message)
}

func (c *ChatContext) Error(message string) {
	c.out.Error(message)
}
