package aitools

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultHNSearchURL is the Hacker News Algolia search endpoint.
const DefaultHNSearchURL = "https://hn.algolia.com/api/v1"

// ForumSearchTool searches Hacker News discussions, where new green-tech
// projects tend to surface before mainstream coverage.
type ForumSearchTool struct {
	BaseURL string
}

func NewForumSearchTool() *ForumSearchTool {
	return &ForumSearchTool{BaseURL: DefaultHNSearchURL}
}

func (t *ForumSearchTool) ToolName() string {
	return "forum_search"
}

func (t *ForumSearchTool) ToolDescription() string {
	return "Searches Hacker News stories and discussions for the given query. Useful for discovering emerging technology projects."
}

func (t *ForumSearchTool) ToolPayloadSchema() Schema {
	return searchSchema("The forum search query")
}

type hnHit struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ObjectID    string `json:"objectID"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
}

type hnResponse struct {
	Hits []hnHit `json:"hits"`
}

func (t *ForumSearchTool) Call(params string) string {
	var p searchParams
	if err := json.Unmarshal([]byte(params), &p); err != nil {
		return "Error: invalid parameters - " + err.Error()
	}

	if p.Query == "" {
		return "Error: query is required"
	}
	maxResults := p.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	endpoint := fmt.Sprintf("%s/search?query=%s&tags=story&hitsPerPage=%d",
		strings.TrimRight(t.BaseURL, "/"), url.QueryEscape(p.Query), maxResults)

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

	var parsed hnResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "Error: failed to parse search response - " + err.Error()
	}

	if len(parsed.Hits) == 0 {
		return "No results found for: " + p.Query
	}

	var sb strings.Builder
	for i, h := range parsed.Hits {
		link := h.URL
		if link == "" {
			link = "https://news.ycombinator.com/item?id=" + h.ObjectID
		}
		fmt.Fprintf(&sb, "%d. %s (%d points, %d comments)\n   %s\n", i+1, h.Title, h.Points, h.NumComments, link)
	}
	return sb.String()
}
