package commands

import (
	"testing"

	"parley/internal/core"
	mocktest "parley/internal/testing"
)

func TestGateCommandsWithoutActiveTurn(t *testing.T) {
	for _, cmd := range []Command{&PauseCommand{}, &ResumeCommand{}, &CancelCommand{}} {
		ctx := mocktest.NewMockContext().WithArgs(cmd.Name())
		cmd.Execute(ctx)
		if !ctx.HasStatus("no turn in progress") {
			t.Errorf("%s: statuses = %v", cmd.Name(), ctx.Statuses)
		}
	}
}

func TestPauseCommand(t *testing.T) {
	gate := core.NewGate(nil)
	ctx := mocktest.NewMockContext().WithGate(gate).WithArgs("/pause")

	(&PauseCommand{}).Execute(ctx)

	if gate.State() != core.GatePaused {
		t.Errorf("gate state = %v, want paused", gate.State())
	}
	if !ctx.HasStatus("turn paused") {
		t.Errorf("statuses = %v", ctx.Statuses)
	}
}

func TestResumeCommand(t *testing.T) {
	gate := core.NewGate(nil)
	gate.Pause()
	ctx := mocktest.NewMockContext().WithGate(gate).WithArgs("/resume")

	(&ResumeCommand{}).Execute(ctx)

	if gate.State() != core.GateRunning {
		t.Errorf("gate state = %v, want running", gate.State())
	}
	if !ctx.HasStatus("turn resumed") {
		t.Errorf("statuses = %v", ctx.Statuses)
	}
}

func TestCancelCommand(t *testing.T) {
	gate := core.NewGate(nil)
	ctx := mocktest.NewMockContext().WithGate(gate).WithArgs("/cancel")

	(&CancelCommand{}).Execute(ctx)

	if gate.State() != core.GateCancelled {
		t.Errorf("gate state = %v, want cancelled", gate.State())
	}
	if !ctx.HasStatus("cancelling turn") {
		t.Errorf("statuses = %v", ctx.Statuses)
	}
}

func TestPauseAfterCancelRefused(t *testing.T) {
	gate := core.NewGate(nil)
	gate.Cancel()

	ctx := mocktest.NewMockContext().WithGate(gate).WithArgs("/pause")
	(&PauseCommand{}).Execute(ctx)
	if !ctx.HasStatus("turn already cancelled") {
		t.Errorf("statuses = %v", ctx.Statuses)
	}

	ctx = mocktest.NewMockContext().WithGate(gate).WithArgs("/resume")
	(&ResumeCommand{}).Execute(ctx)
	if !ctx.HasStatus("turn already cancelled") {
		t.Errorf("statuses = %v", ctx.Statuses)
	}
}
