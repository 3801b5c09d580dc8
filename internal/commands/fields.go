package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"parley/internal/config"
)

// configField defines how to get and set a configuration value
type configField struct {
	setter func(*config.Configuration, string) error
	getter func(*config.Configuration) string
	// touchesLLM marks fields whose change requires the completion
	// client to be rebuilt
	touchesLLM bool
}

// configFields maps parameter names to their handlers
var configFields = map[string]configField{
	"model": {
		setter: func(c *config.Configuration, v string) error { c.Model.Model = v; return nil },
		getter: func(c *config.Configuration) string { return c.Model.Model },
	},
	"maxtokens": {
		setter: func(c *config.Configuration, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid value for maxtokens. Please provide a valid integer")
			}
			c.Model.MaxTokens = n
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%d", c.Model.MaxTokens) },
	},
	"temperature": {
		setter: func(c *config.Configuration, v string) error {
			f, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return fmt.Errorf("invalid value for temperature. Please provide a valid float")
			}
			c.Model.Temperature = float32(f)
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%f", c.Model.Temperature) },
	},
	"top_p": {
		setter: func(c *config.Configuration, v string) error {
			f, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return fmt.Errorf("invalid value for top_p. Please provide a valid float")
			}
			if f < 0 || f > 1 {
				return fmt.Errorf("invalid value for top_p. Please provide a float between 0 and 1")
			}
			c.Model.TopP = float32(f)
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%f", c.Model.TopP) },
	},
	"thinking": {
		setter: func(c *config.Configuration, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for thinking. Please provide 'true' or 'false'")
			}
			c.Model.Thinking = b
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%t", c.Model.Thinking) },
	},
	"prompt": {
		setter: func(c *config.Configuration, v string) error { c.Chat.Prompt = v; return nil },
		getter: func(c *config.Configuration) string { return c.Chat.Prompt },
	},
	"greeting": {
		setter: func(c *config.Configuration, v string) error { c.Chat.Greeting = v; return nil },
		getter: func(c *config.Configuration) string { return c.Chat.Greeting },
	},
	"markdown": {
		setter: func(c *config.Configuration, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for markdown. Please provide 'true' or 'false'")
			}
			c.Chat.Markdown = b
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%t", c.Chat.Markdown) },
	},
	"showtoolstatus": {
		setter: func(c *config.Configuration, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for showtoolstatus. Please provide 'true' or 'false'")
			}
			c.Chat.ShowToolStatus = b
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%t", c.Chat.ShowToolStatus) },
	},
	"apitimeout": {
		setter: func(c *config.Configuration, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid value for apitimeout. Please provide a valid duration (e.g. 30s, 5m)")
			}
			c.API.Timeout = d
			return nil
		},
		getter: func(c *config.Configuration) string { return c.API.Timeout.String() },
	},
	"openaikey": {
		setter:     func(c *config.Configuration, v string) error { c.API.OpenAIKey = v; return nil },
		getter:     func(c *config.Configuration) string { return maskAPIKey(c.API.OpenAIKey) },
		touchesLLM: true,
	},
	"openaiurl": {
		setter:     func(c *config.Configuration, v string) error { c.API.OpenAIURL = v; return nil },
		getter:     func(c *config.Configuration) string { return c.API.OpenAIURL },
		touchesLLM: true,
	},
	"anthropickey": {
		setter:     func(c *config.Configuration, v string) error { c.API.AnthropicKey = v; return nil },
		getter:     func(c *config.Configuration) string { return maskAPIKey(c.API.AnthropicKey) },
		touchesLLM: true,
	},
	"geminikey": {
		setter:     func(c *config.Configuration, v string) error { c.API.GeminiKey = v; return nil },
		getter:     func(c *config.Configuration) string { return maskAPIKey(c.API.GeminiKey) },
		touchesLLM: true,
	},
	"ollamakey": {
		setter:     func(c *config.Configuration, v string) error { c.API.OllamaKey = v; return nil },
		getter:     func(c *config.Configuration) string { return maskAPIKey(c.API.OllamaKey) },
		touchesLLM: true,
	},
	"ollamaurl": {
		setter:     func(c *config.Configuration, v string) error { c.API.OllamaURL = v; return nil },
		getter:     func(c *config.Configuration) string { return c.API.OllamaURL },
		touchesLLM: true,
	},
	"googlekey": {
		setter: func(c *config.Configuration, v string) error { c.Search.GoogleKey = v; return nil },
		getter: func(c *config.Configuration) string { return maskAPIKey(c.Search.GoogleKey) },
	},
	"googlecx": {
		setter: func(c *config.Configuration, v string) error { c.Search.EngineID = v; return nil },
		getter: func(c *config.Configuration) string { return c.Search.EngineID },
	},
	"searchresults": {
		setter: func(c *config.Configuration, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 10 {
				return fmt.Errorf("invalid value for searchresults. Please provide an integer between 1 and 10")
			}
			c.Search.MaxResults = n
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%d", c.Search.MaxResults) },
	},
	"sessionhistory": {
		setter: func(c *config.Configuration, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid value for sessionhistory. Please provide a valid integer")
			}
			c.Session.MaxHistoryTokens = n
			return nil
		},
		getter: func(c *config.Configuration) string { return fmt.Sprintf("%d", c.Session.MaxHistoryTokens) },
	},
	"sessionduration": {
		setter: func(c *config.Configuration, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid value for sessionduration. Please provide a valid duration (e.g. 10m, 1h)")
			}
			c.Session.TTL = d
			return nil
		},
		getter: func(c *config.Configuration) string { return c.Session.TTL.String() },
	},
}

// getConfigKeys returns all available config keys
func getConfigKeys() []string {
	keys := make([]string, 0, len(configFields)+1)
	for k := range configFields {
		keys = append(keys, k)
	}
	keys = append(keys, "provider")
	sort.Strings(keys)
	return keys
}

// maskAPIKey returns a masked version of an API key showing only first 4 chars
func maskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
