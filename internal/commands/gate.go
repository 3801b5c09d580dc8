package commands

import (
	"parley/internal/core"
)

// PauseCommand suspends the running turn at its next step boundary.
type PauseCommand struct{}

func (c *PauseCommand) Name() string  { return "/pause" }
func (c *PauseCommand) Usage() string { return "/pause - suspend the running turn" }

func (c *PauseCommand) Execute(ctx core.ChatContextInterface) {
	gate := ctx.GetGate()
	if gate == nil {
		ctx.Status("no turn in progress")
		return
	}
	if !gate.Pause() {
		ctx.Status("turn already cancelled")
		return
	}
	ctx.Status("turn paused, /resume to continue")
}

// ResumeCommand lets a paused turn continue.
type ResumeCommand struct{}

func (c *ResumeCommand) Name() string  { return "/resume" }
func (c *ResumeCommand) Usage() string { return "/resume - continue a paused turn" }

func (c *ResumeCommand) Execute(ctx core.ChatContextInterface) {
	gate := ctx.GetGate()
	if gate == nil {
		ctx.Status("no turn in progress")
		return
	}
	if !gate.Resume() {
		ctx.Status("turn already cancelled")
		return
	}
	ctx.Status("turn resumed")
}

// CancelCommand ends the running turn. Terminal: a cancelled turn never
// resumes.
type CancelCommand struct{}

func (c *CancelCommand) Name() string  { return "/cancel" }
func (c *CancelCommand) Usage() string { return "/cancel - end the running turn" }

func (c *CancelCommand) Execute(ctx core.ChatContextInterface) {
	gate := ctx.GetGate()
	if gate == nil {
		ctx.Status("no turn in progress")
		return
	}
	gate.Cancel()
	ctx.Status("cancelling turn")
}
