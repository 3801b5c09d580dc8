package testing

import (
	"time"

	"parley/internal/config"
)

// DefaultTestConfig returns a minimal configuration for testing
func DefaultTestConfig() *config.Configuration {
	return &config.Configuration{
		Chat: &config.ChatConfig{
			Name:           "parley",
			Prompt:         "You are a test assistant.",
			Greeting:       "",
			Markdown:       false,
			ShowToolStatus: true,
			Verbose:        false,
		},
		Model: &config.ModelConfig{
			Provider:    "ollama",
			Model:       "llama3.2",
			MaxTokens:   100,
			Temperature: 0.7,
			TopP:        1.0,
			Thinking:    false,
		},
		Search: &config.SearchConfig{
			MaxResults: 5,
		},
		Session: &config.SessionConfig{
			MaxHistoryTokens: 16384,
			TTL:              time.Minute * 10,
		},
		API: &config.APIConfig{
			Timeout:   time.Second * 30,
			OllamaURL: "http://localhost:11434",
		},
	}
}
