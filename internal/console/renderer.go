package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"parley/internal/config"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	toolStyle   = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("14"))
)

// Renderer writes the conversation to the terminal. Assistant chunks
// stream in as they arrive; in markdown mode they are buffered and the
// complete message is rendered through glamour, in plain mode they are
// echoed immediately.
type Renderer struct {
	mu        sync.Mutex
	out       io.Writer
	name      string
	showTools bool
	md        *glamour.TermRenderer
	buf       strings.Builder
	streaming bool
}

func NewRenderer(out io.Writer, cfg *config.Configuration) *Renderer {
	r := &Renderer{
		out:       out,
		name:      cfg.Chat.Name,
		showTools: cfg.Chat.ShowToolStatus,
	}

	if cfg.Chat.Markdown {
		md, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(0),
		)
		if err == nil {
			r.md = md
		}
	}

	return r
}

// Reply prints a complete assistant-side message, used by commands.
func (r *Renderer) Reply(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Render(r.name+":"), message)
}

// Status prints a dim one-liner for lifecycle notices.
func (r *Renderer) Status(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, statusStyle.Render("· "+message))
}

// Error prints a failure the user should see.
func (r *Renderer) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, errorStyle.Render("! "+message))
}

// AssistantText receives one streamed chunk of assistant output.
func (r *Renderer) AssistantText(chunk string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.md != nil {
		r.buf.WriteString(chunk)
		return
	}

	if !r.streaming {
		fmt.Fprintf(r.out, "%s ", labelStyle.Render(r.name+":"))
		r.streaming = true
	}
	fmt.Fprint(r.out, chunk)
}

// AssistantDone closes out one assistant message.
func (r *Renderer) AssistantDone() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.md != nil {
		text := r.buf.String()
		r.buf.Reset()
		if text == "" {
			return
		}
		rendered, err := r.md.Render(text)
		if err != nil {
			rendered = text + "\n"
		}
		fmt.Fprintf(r.out, "%s\n%s", labelStyle.Render(r.name+":"), rendered)
		return
	}

	if r.streaming {
		fmt.Fprintln(r.out)
		r.streaming = false
	}
}

// ToolIssued shows that a tool call is starting.
func (r *Renderer) ToolIssued(id, name, arguments string) {
	if !r.showTools {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	preview := arguments
	if len(preview) > 120 {
		preview = preview[:120] + "..."
	}
	fmt.Fprintln(r.out, toolStyle.Render(fmt.Sprintf("⚙ %s %s", name, preview)))
}

// ToolCompleted shows a tool call's outcome.
func (r *Renderer) ToolCompleted(id, name, result string, failed bool) {
	if !r.showTools {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	mark := "✓"
	if failed {
		mark = "✗"
	}
	fmt.Fprintln(r.out, toolStyle.Render(fmt.Sprintf("%s %s (%d bytes)", mark, name, len(result))))
}
