package core

import (
	"log/slog"
	"sync"

	"github.com/alexschlessinger/pollytool/llm"
	"github.com/alexschlessinger/pollytool/sessions"
	"github.com/alexschlessinger/pollytool/tools"

	"parley/internal/config"
)

type SystemImpl struct {
	Store sessions.SessionStore
	Tools *tools.ToolRegistry

	mu  sync.RWMutex
	llm LLM
}

var _ System = (*SystemImpl)(nil)

func (s *SystemImpl) GetToolRegistry() *tools.ToolRegistry {
	return s.Tools
}

func (s *SystemImpl) GetSessionStore() sessions.SessionStore {
	return s.Store
}

func (s *SystemImpl) GetLLM() LLM {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.llm
}

// UpdateLLM rebuilds the completion client after a credential or URL
// change so new keys take effect without a restart.
func (s *SystemImpl) UpdateLLM(api config.APIConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.llm = NewMultiPassLLM(api)
	slog.Debug("completion client rebuilt")
	return nil
}

// NewMultiPassLLM builds the provider-routing completion client from the
// configured credentials.
func NewMultiPassLLM(api config.APIConfig) *llm.MultiPass {
	apiKeys := map[string]string{
		"openai":    api.OpenAIKey,
		"anthropic": api.AnthropicKey,
		"gemini":    api.GeminiKey,
		"ollama":    api.OllamaKey,
	}
	return llm.NewMultiPass(apiKeys)
}
