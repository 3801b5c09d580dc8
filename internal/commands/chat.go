package commands

import (
	"errors"

	"github.com/alexschlessinger/pollytool/messages"

	"parley/internal/agent"
	"parley/internal/core"
)

// ChatCommand is the default command: any input that is not a slash
// command becomes a chat turn.
type ChatCommand struct {
	Sink agent.EventSink
}

func (c *ChatCommand) Name() string  { return "" }
func (c *ChatCommand) Usage() string { return "" }

func (c *ChatCommand) Execute(ctx core.ChatContextInterface) {
	session := ctx.GetSession()
	cfg := ctx.GetConfig()

	// Turn state lives for one turn only
	defer session.Clear()

	loop := agent.NewLoop(cfg, ctx.GetSystem(), ctx.GetGate(), c.Sink, ctx.GetLogger())
	err := loop.Run(ctx, session, ctx.GetInput())

	switch {
	case err == nil:
		if historyTrimmed(session.GetHistory(), ctx.GetInput()) {
			ctx.Status("turn history hit the token budget, oldest messages were dropped")
		}

	case errors.Is(err, core.ErrCancelled):
		ctx.Status("turn cancelled")

	default:
		ctx.GetLogger().Error("turn failed", "error", err)
		ctx.Error(err.Error())
	}
}

// historyTrimmed reports whether the session store dropped the turn's
// opening user message to stay inside the history token budget.
func historyTrimmed(history []messages.ChatMessage, input string) bool {
	for _, msg := range history {
		if msg.Role == messages.MessageRoleUser && msg.Content == input {
			return false
		}
	}
	return len(history) > 0
}
