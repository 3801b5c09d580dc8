package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the configuration back to its YAML file using the same flat
// keys the flag sources read, so a saved file round-trips on the next start.
func (c *Configuration) Save() error {
	if c.Path == "" {
		return fmt.Errorf("no config path set")
	}

	out := map[string]any{
		"name":           c.Chat.Name,
		"prompt":         c.Chat.Prompt,
		"greeting":       c.Chat.Greeting,
		"markdown":       c.Chat.Markdown,
		"showtoolstatus": c.Chat.ShowToolStatus,
		"verbose":        c.Chat.Verbose,

		"provider":    c.Model.Provider,
		"model":       c.Model.Model,
		"maxtokens":   c.Model.MaxTokens,
		"temperature": c.Model.Temperature,
		"top_p":       c.Model.TopP,
		"thinking":    c.Model.Thinking,

		"openaikey":    c.API.OpenAIKey,
		"openaiurl":    c.API.OpenAIURL,
		"anthropickey": c.API.AnthropicKey,
		"geminikey":    c.API.GeminiKey,
		"ollamaurl":    c.API.OllamaURL,
		"ollamakey":    c.API.OllamaKey,
		"apitimeout":   c.API.Timeout.String(),

		"googlekey":     c.Search.GoogleKey,
		"googlecx":      c.Search.EngineID,
		"searchresults": c.Search.MaxResults,

		"sessionhistory":  c.Session.MaxHistoryTokens,
		"sessionduration": c.Session.TTL.String(),
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	// Keys may be in the file, keep it private
	if err := os.WriteFile(c.Path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load reads a saved YAML config into a flat map, the same shape the flag
// value sources consume.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return out, nil
}
