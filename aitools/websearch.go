package aitools

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const userAgent = "taskforce-cli"

// DefaultSearxURL is the SearxNG instance queried when SEARX_URL is unset.
const DefaultSearxURL = "https://searx.be"

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// searxResult is a single entry in a SearxNG JSON response
type searxResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type searxResponse struct {
	Results []searxResult `json:"results"`
}

type searchParams struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// searxSearch queries a SearxNG instance in the given category and formats
// the results as a readable list.
func searxSearch(baseURL, category, query string, maxResults int) string {
	if query == "" {
		return "Error: query is required"
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&categories=%s&format=json",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(query), url.QueryEscape(category))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return "Error: failed to create request - " + err.Error()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "Error: search request failed - " + err.Error()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "Error: failed to read response - " + err.Error()
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error: search returned status %d", resp.StatusCode)
	}

	var parsed searxResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "Error: failed to parse search response - " + err.Error()
	}

	if len(parsed.Results) == 0 {
		return "No results found for: " + query
	}

	if len(parsed.Results) > maxResults {
		parsed.Results = parsed.Results[:maxResults]
	}

	var sb strings.Builder
	for i, r := range parsed.Results {
		fmt.Fprintf(&sb, "%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Content != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Content)
		}
	}
	return sb.String()
}

func searxBaseURL() string {
	if v := os.Getenv("SEARX_URL"); v != "" {
		return v
	}
	return DefaultSearxURL
}

// WebSearchTool performs general web searches via a SearxNG instance
type WebSearchTool struct {
	BaseURL string
}

func NewWebSearchTool() *WebSearchTool {
	return &WebSearchTool{BaseURL: searxBaseURL()}
}

func (t *WebSearchTool) ToolName() string {
	return "web_search"
}

func (t *WebSearchTool) ToolDescription() string {
	return "Searches the web for the given query and returns a list of results with titles, URLs and snippets."
}

func (t *WebSearchTool) ToolPayloadSchema() Schema {
	return searchSchema("The search query")
}

func (t *WebSearchTool) Call(params string) string {
	var p searchParams
	if err := json.Unmarshal([]byte(params), &p); err != nil {
		return "Error: invalid parameters - " + err.Error()
	}
	return searxSearch(t.BaseURL, "general", p.Query, p.MaxResults)
}

// NewsSearchTool searches recent news coverage via a SearxNG instance
type NewsSearchTool struct {
	BaseURL string
}

func NewNewsSearchTool() *NewsSearchTool {
	return &NewsSearchTool{BaseURL: searxBaseURL()}
}

func (t *NewsSearchTool) ToolName() string {
	return "news_search"
}

func (t *NewsSearchTool) ToolDescription() string {
	return "Searches recent news articles for the given query and returns titles, URLs and snippets."
}

func (t *NewsSearchTool) ToolPayloadSchema() Schema {
	return searchSchema("The news search query")
}

func (t *NewsSearchTool) Call(params string) string {
	var p searchParams
	if err := json.Unmarshal([]byte(params), &p); err != nil {
		return "Error: invalid parameters - " + err.Error()
	}
	return searxSearch(t.BaseURL, "news", p.Query, p.MaxResults)
}

func searchSchema(queryDescription string) Schema {
	return Schema{
		Type: TypeObject,
		Properties: PropertyMap{
			"query": {
				Type:        TypeString,
				Description: queryDescription,
			},
			"max_results": {
				Type:        TypeInteger,
				Description: "Maximum number of results to return (default 5)",
			},
		},
		Required: []string{"query"},
	}
}
