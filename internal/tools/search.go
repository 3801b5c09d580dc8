package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"parley/internal/config"
)

const googleSearchURL = "https://www.googleapis.com/customsearch/v1"

// SearchTool queries the Google Custom Search JSON API.
type SearchTool struct {
	BaseTool
	apiKey     string
	engineID   string
	maxDefault int
	baseURL    string
	httpClient *http.Client
}

func NewSearchTool(cfg *config.SearchConfig) *SearchTool {
	maxDefault := cfg.MaxResults
	if maxDefault <= 0 {
		maxDefault = 5
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = googleSearchURL
	}
	return &SearchTool{
		apiKey:     cfg.GoogleKey,
		engineID:   cfg.EngineID,
		maxDefault: maxDefault,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *SearchTool) GetName() string {
	return "web_search"
}

func (t *SearchTool) GetSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:       "web_search",
		Description: "Search the web and return result titles, URLs and snippets",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "The search query",
			},
			"num_results": {
				Type:        "integer",
				Description: "Number of results to return (1-10, default 5)",
			},
		},
		Required: []string{"query"},
	}
}

// searchResponse is the slice of the Custom Search payload we care about
type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

type searchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

func (t *SearchTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return "", fmt.Errorf("query must be a non-empty string")
	}

	if t.apiKey == "" || t.engineID == "" {
		return "", fmt.Errorf("web search is not configured: set googlekey and googlecx")
	}

	num := t.maxDefault
	// JSON numbers decode as float64
	if v, ok := args["num_results"].(float64); ok {
		num = int(v)
	}
	if num < 1 {
		num = 1
	}
	if num > 10 {
		num = 10
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", t.apiKey)
	params.Set("cx", t.engineID)
	params.Set("num", fmt.Sprintf("%d", num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build search request: %w", err)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse search response: %w", err)
	}

	slog.Debug("web search complete",
		"query", query,
		"results", len(parsed.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// No hits is a valid answer for the model, not an error
	if len(parsed.Items) == 0 {
		out, _ := json.Marshal(map[string]any{
			"results": []searchResult{},
			"message": "No results found for the query.",
		})
		return string(out), nil
	}

	results := make([]searchResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, searchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}

	out, err := json.Marshal(map[string]any{"results": results})
	if err != nil {
		return "", fmt.Errorf("encode search results: %w", err)
	}
	return string(out), nil
}
