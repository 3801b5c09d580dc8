package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Chat    *ChatConfig
	Model   *ModelConfig
	Search  *SearchConfig
	Session *SessionConfig
	API     *APIConfig

	// path of the file Save writes to
	Path string
}

type ChatConfig struct {
	Name           string
	Prompt         string
	Greeting       string
	Markdown       bool
	ShowToolStatus bool
	Verbose        bool
}

type ModelConfig struct {
	Provider    string
	Model       string
	MaxTokens   int
	Temperature float32
	TopP        float32
	Thinking    bool
}

type SearchConfig struct {
	GoogleKey  string
	EngineID   string
	BaseURL    string
	MaxResults int
}

type SessionConfig struct {
	MaxHistoryTokens int
	TTL              time.Duration
}

type APIConfig struct {
	Timeout      time.Duration
	OpenAIKey    string
	OpenAIURL    string
	AnthropicKey string
	GeminiKey    string
	OllamaURL    string
	OllamaKey    string
}

// Providers maps each supported provider to its default model.
var Providers = map[string]string{
	"openai":    "gpt-4o",
	"anthropic": "claude-sonnet-4-0",
	"gemini":    "gemini-2.5-flash",
	"ollama":    "llama3.2",
}

// ProviderNames returns the supported providers in stable order.
func ProviderNames() []string {
	return []string{"anthropic", "gemini", "ollama", "openai"}
}

// YamlSource implements cli.ValueSource for a map loaded from YAML
type YamlSource struct {
	data map[string]any
	key  string
}

func (y *YamlSource) Lookup() (string, bool) {
	if v, ok := y.data[y.key]; ok {
		// Handle slices by joining with comma
		if slice, ok := v.([]any); ok {
			var strs []string
			for _, item := range slice {
				strs = append(strs, fmt.Sprintf("%v", item))
			}
			return strings.Join(strs, ","), true
		}
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func (y *YamlSource) String() string   { return "yaml" }
func (y *YamlSource) GoString() string { return "yaml" }

func GetFlags() []cli.Flag {
	// Pre-parse config path
	configPath := GetConfigPath()
	var configData map[string]any
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			_ = yaml.Unmarshal(data, &configData)
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", configPath, err)
		}
	}

	// Helper to create sources: EnvVar > YAML > Default
	src := func(key string, env ...string) cli.ValueSourceChain {
		chain := cli.ValueSourceChain{}
		for _, e := range env {
			chain.Chain = append(chain.Chain, cli.EnvVar(e))
		}
		if configData != nil {
			chain.Chain = append(chain.Chain, &YamlSource{data: configData, key: key})
		}
		return chain
	}

	return []cli.Flag{
		// Config file
		&cli.StringFlag{Name: "config", Aliases: []string{"b"}, Usage: "use the named configuration file", Sources: cli.EnvVars("PARLEY_CONFIG")},

		// Chat surface
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Value: "parley", Usage: "assistant's display name", Sources: src("name", "PARLEY_NAME")},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "enable verbose logging", Sources: src("verbose", "PARLEY_VERBOSE")},
		&cli.BoolFlag{Name: "markdown", Value: true, Usage: "render assistant replies as markdown", Sources: src("markdown", "PARLEY_MARKDOWN")},
		&cli.BoolFlag{Name: "showtoolstatus", Value: true, Usage: "show tool call status lines while tools run", Sources: src("showtoolstatus", "PARLEY_SHOWTOOLSTATUS")},

		// Provider / model
		&cli.StringFlag{Name: "provider", Usage: "chat completion provider (openai, anthropic, gemini, ollama)", Value: "ollama", Sources: src("provider", "PARLEY_PROVIDER")},
		&cli.StringFlag{Name: "model", Usage: "model to be used for responses", Sources: src("model", "PARLEY_MODEL")},
		&cli.IntFlag{Name: "maxtokens", Value: 4096, Usage: "maximum number of tokens to generate", Sources: src("maxtokens", "PARLEY_MAXTOKENS")},
		&cli.FloatFlag{Name: "temperature", Value: 0.7, Usage: "temperature for the completion", Sources: src("temperature", "PARLEY_TEMPERATURE")},
		&cli.FloatFlag{Name: "top_p", Value: 1.0, Usage: "top P value for the completion", Sources: src("top_p", "PARLEY_TOP_P")},
		&cli.BoolFlag{Name: "thinking", Usage: "enable thinking/reasoning for models that support it", Sources: src("thinking", "PARLEY_THINKING")},

		// API configuration
		&cli.StringFlag{Name: "openaikey", Usage: "OpenAI API key", Sources: src("openaikey", "PARLEY_OPENAIKEY")},
		&cli.StringFlag{Name: "openaiurl", Usage: "OpenAI API URL (for custom endpoints)", Sources: src("openaiurl", "PARLEY_OPENAIURL")},
		&cli.StringFlag{Name: "anthropickey", Usage: "Anthropic API key", Sources: src("anthropickey", "PARLEY_ANTHROPICKEY")},
		&cli.StringFlag{Name: "geminikey", Usage: "Google Gemini API key", Sources: src("geminikey", "PARLEY_GEMINIKEY")},
		&cli.StringFlag{Name: "ollamaurl", Value: "http://localhost:11434", Usage: "Ollama API URL", Sources: src("ollamaurl", "PARLEY_OLLAMAURL")},
		&cli.StringFlag{Name: "ollamakey", Usage: "Ollama API key (Bearer token for authentication)", Sources: src("ollamakey", "PARLEY_OLLAMAKEY")},
		&cli.DurationFlag{Name: "apitimeout", Aliases: []string{"t"}, Value: time.Minute * 5, Usage: "timeout for each completion request", Sources: src("apitimeout", "PARLEY_APITIMEOUT")},

		// Search
		&cli.StringFlag{Name: "googlekey", Usage: "Google Custom Search API key", Sources: src("googlekey", "PARLEY_GOOGLEKEY")},
		&cli.StringFlag{Name: "googlecx", Usage: "Google Custom Search engine ID", Sources: src("googlecx", "PARLEY_GOOGLECX")},
		&cli.IntFlag{Name: "searchresults", Value: 5, Usage: "default number of web search results", Sources: src("searchresults", "PARLEY_SEARCHRESULTS")},

		// Turn state
		&cli.IntFlag{Name: "sessionhistory", Aliases: []string{"H"}, Value: 16384, Usage: "history token budget per turn, oldest messages are dropped beyond it", Sources: src("sessionhistory", "PARLEY_SESSIONHISTORY")},
		&cli.DurationFlag{Name: "sessionduration", Aliases: []string{"S"}, Value: time.Minute * 10, Usage: "turn state will be dropped after it is unused for this duration", Sources: src("sessionduration", "PARLEY_SESSIONDURATION")},

		// Personality / prompting
		&cli.StringFlag{Name: "greeting", Usage: "prompt used to greet the user at startup, empty disables", Sources: src("greeting", "PARLEY_GREETING")},
		&cli.StringFlag{Name: "prompt", Value: "you are a helpful assistant with tools for web search, remote workflows and code evaluation. use them when they help.", Usage: "initial system prompt", Sources: src("prompt", "PARLEY_PROMPT")},
	}
}

// GetConfigPath resolves the config file location: the --config flag or
// PARLEY_CONFIG beat the default under the user config dir.
func GetConfigPath() string {
	if v := os.Getenv("PARLEY_CONFIG"); v != "" {
		return v
	}
	for i, arg := range os.Args {
		if arg == "--config" || arg == "-b" {
			if i+1 < len(os.Args) {
				return os.Args[i+1]
			}
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return DefaultConfigPath()
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "parley", "config.yaml")
}

func NewConfiguration(c *cli.Command) *Configuration {
	provider := strings.ToLower(c.String("provider"))
	model := c.String("model")
	if model == "" {
		model = Providers[provider]
	}

	config := &Configuration{
		Chat: &ChatConfig{
			Name:           c.String("name"),
			Prompt:         c.String("prompt"),
			Greeting:       c.String("greeting"),
			Markdown:       c.Bool("markdown"),
			ShowToolStatus: c.Bool("showtoolstatus"),
			Verbose:        c.Bool("verbose"),
		},
		Model: &ModelConfig{
			Provider:    provider,
			Model:       model,
			MaxTokens:   c.Int("maxtokens"),
			Temperature: float32(c.Float("temperature")),
			TopP:        float32(c.Float("top_p")),
			Thinking:    c.Bool("thinking"),
		},
		Search: &SearchConfig{
			GoogleKey:  c.String("googlekey"),
			EngineID:   c.String("googlecx"),
			MaxResults: c.Int("searchresults"),
		},
		Session: &SessionConfig{
			MaxHistoryTokens: c.Int("sessionhistory"),
			TTL:              c.Duration("sessionduration"),
		},
		API: &APIConfig{
			Timeout:      c.Duration("apitimeout"),
			OpenAIKey:    c.String("openaikey"),
			OpenAIURL:    c.String("openaiurl"),
			AnthropicKey: c.String("anthropickey"),
			GeminiKey:    c.String("geminikey"),
			OllamaURL:    c.String("ollamaurl"),
			OllamaKey:    c.String("ollamakey"),
		},
		Path: GetConfigPath(),
	}

	return config
}

// ModelSpec returns the provider-prefixed model string the completion
// client routes on, e.g. "ollama/llama3.2".
func (c *Configuration) ModelSpec() string {
	if strings.Contains(c.Model.Model, "/") {
		return c.Model.Model
	}
	return c.Model.Provider + "/" + c.Model.Model
}

// CredentialFor returns the configured credential for a provider. Ollama
// needs no key, so its URL stands in.
func (c *Configuration) CredentialFor(provider string) string {
	switch provider {
	case "openai":
		return c.API.OpenAIKey
	case "anthropic":
		return c.API.AnthropicKey
	case "gemini":
		return c.API.GeminiKey
	case "ollama":
		return c.API.OllamaURL
	}
	return ""
}
