package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"parley/internal/commands"
	"parley/internal/config"
	"parley/internal/core"
)

// Console runs the interactive prompt. Input is read on its own
// goroutine so slash commands still reach a running turn, which is how
// /pause, /resume and /cancel work mid-turn.
type Console struct {
	cfg      *config.Configuration
	sys      core.System
	renderer *Renderer
	registry *commands.Registry
	chat     *commands.ChatCommand
	lock     *core.TurnLock
	shutdown context.CancelFunc

	mu         sync.Mutex
	activeGate *core.Gate
	turnDone   sync.WaitGroup
}

func Run(ctx context.Context, cfg *config.Configuration, sys core.System, version string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := &Console{
		cfg:      cfg,
		sys:      sys,
		renderer: NewRenderer(os.Stdout, cfg),
		registry: commands.NewRegistry(),
		lock:     core.NewTurnLock(),
		shutdown: cancel,
	}
	c.chat = &commands.ChatCommand{Sink: c.renderer}
	c.registerCommands(version)

	if cfg.Chat.Greeting != "" {
		c.greet(ctx)
	}

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	for {
		select {
		case <-ctx.Done():
			c.cancelActiveTurn()
			c.turnDone.Wait()
			return nil
		case line, ok := <-lines:
			if !ok {
				c.cancelActiveTurn()
				c.turnDone.Wait()
				return nil
			}
			c.handle(ctx, line)
		}
	}
}

func (c *Console) registerCommands(version string) {
	c.registry.Register(&commands.SetCommand{})
	c.registry.Register(&commands.GetCommand{})
	c.registry.Register(&commands.ProviderCommand{})
	c.registry.Register(&commands.PauseCommand{})
	c.registry.Register(&commands.ResumeCommand{})
	c.registry.Register(&commands.CancelCommand{})
	c.registry.Register(&commands.ToolsCommand{})
	c.registry.Register(&commands.VersionCommand{Version: version})
	c.registry.Register(&commands.QuitCommand{Shutdown: c.shutdown})
	c.registry.Register(commands.NewHelpCommand(c.registry))
}

func (c *Console) handle(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if strings.HasPrefix(line, "/") {
		args := strings.Fields(line)
		cmdctx := core.NewCommandContext(ctx, c.cfg, c.sys, c.renderer, args, c.gate())
		if !c.registry.Dispatch(cmdctx) {
			c.renderer.Status("unknown command, /help lists commands")
		}
		return
	}

	if !c.lock.TryLock() {
		c.renderer.Status("a turn is already running, /pause or /cancel it first")
		return
	}

	c.turnDone.Add(1)
	go func() {
		defer c.turnDone.Done()
		defer c.lock.Unlock()
		c.turn(ctx, line)
	}()
}

// turn runs one chat turn to completion. The caller holds the turn
// lock.
func (c *Console) turn(ctx context.Context, input string) {
	tctx, cancel, err := core.NewTurnContext(ctx, c.cfg, c.sys, c.renderer, input)
	if err != nil {
		c.renderer.Error(fmt.Sprintf("could not start turn: %v", err))
		return
	}
	defer cancel()

	c.setGate(tctx.GetGate())
	defer c.setGate(nil)

	c.chat.Execute(tctx)
}

// greet runs the configured greeting as a normal turn before the first
// prompt is shown.
func (c *Console) greet(ctx context.Context) {
	if !c.lock.TryLock() {
		return
	}
	defer c.lock.Unlock()
	c.turn(ctx, c.cfg.Chat.Greeting)
}

func (c *Console) gate() *core.Gate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeGate
}

func (c *Console) setGate(g *core.Gate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeGate = g
}

func (c *Console) cancelActiveTurn() {
	if g := c.gate(); g != nil {
		g.Cancel()
	}
}

func readLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}
