package agent

import (
	"github.com/alexschlessinger/pollytool/llm"
	"github.com/alexschlessinger/pollytool/sessions"
	"github.com/alexschlessinger/pollytool/tools"

	"parley/internal/config"
)

type CompletionRequest = llm.CompletionRequest

// NewCompletionRequest builds a request from the current configuration
// and turn state. Called once per round trip so the request always
// carries the full history snapshot.
func NewCompletionRequest(cfg *config.Configuration, session sessions.Session, tools []tools.Tool) *CompletionRequest {
	req := &CompletionRequest{
		Timeout:     cfg.API.Timeout,
		Model:       cfg.ModelSpec(),
		MaxTokens:   cfg.Model.MaxTokens,
		Messages:    session.GetHistory(),
		Temperature: cfg.Model.Temperature,
		Tools:       tools,
	}

	switch cfg.Model.Provider {
	case "ollama":
		req.BaseURL = cfg.API.OllamaURL
	case "openai":
		req.BaseURL = cfg.API.OpenAIURL
	}

	if cfg.Model.Thinking {
		req.ThinkingEffort = "medium"
	}

	return req
}
