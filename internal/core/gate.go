package core

import (
	"context"
	"sync"
)

// GateState is the lifecycle state of a turn.
type GateState int

const (
	GateRunning GateState = iota
	GatePaused
	GateCancelled
)

func (s GateState) String() string {
	switch s {
	case GateRunning:
		return "running"
	case GatePaused:
		return "paused"
	case GateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Gate coordinates pause and cancel requests with a running turn. The
// turn calls Checkpoint between its steps; the console calls Pause,
// Resume and Cancel from the input goroutine. Checkpoint blocks on a
// condition variable while paused, so pausing costs nothing per tick.
// Cancelled is terminal.
type Gate struct {
	mu     sync.Mutex
	cond   *sync.Cond
	state  GateState
	cancel context.CancelFunc
}

// NewGate creates a gate in the running state. cancel, if set, is fired
// on Cancel so in-flight requests on the turn context abort too.
func NewGate(cancel context.CancelFunc) *Gate {
	g := &Gate{cancel: cancel}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// State returns the current state.
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pause moves a running gate to paused. Returns false once cancelled.
func (g *Gate) Pause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == GateCancelled {
		return false
	}
	g.state = GatePaused
	return true
}

// Resume moves a paused gate back to running and wakes the waiting turn.
// Returns false once cancelled.
func (g *Gate) Resume() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == GateCancelled {
		return false
	}
	g.state = GateRunning
	g.cond.Broadcast()
	return true
}

// Cancel moves the gate to its terminal state, wakes any waiting turn
// and aborts the turn context. Idempotent.
func (g *Gate) Cancel() {
	g.mu.Lock()
	already := g.state == GateCancelled
	g.state = GateCancelled
	g.cond.Broadcast()
	g.mu.Unlock()

	if !already && g.cancel != nil {
		g.cancel()
	}
}

// Checkpoint is called by the turn between steps. It returns immediately
// while running, blocks while paused, and returns ErrCancelled once the
// gate is cancelled or the turn context ends.
func (g *Gate) Checkpoint(ctx context.Context) error {
	// Wake the cond wait if the context dies while we are paused
	stop := context.AfterFunc(ctx, func() {
		g.mu.Lock()
		g.cond.Broadcast()
		g.mu.Unlock()
	})
	defer stop()

	g.mu.Lock()
	defer g.mu.Unlock()

	for g.state == GatePaused && ctx.Err() == nil {
		g.cond.Wait()
	}

	if g.state == GateCancelled || ctx.Err() != nil {
		return ErrCancelled
	}
	return nil
}
