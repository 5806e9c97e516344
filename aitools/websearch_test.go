package aitools_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskforce/aitools"
)

var _ = Describe("WebSearchTool", func() {
	var (
		server   *httptest.Server
		requests []*http.Request
		results  []map[string]string
	)

	BeforeEach(func() {
		requests = nil
		results = []map[string]string{
			{"title": "Solar farm opens", "url": "https://example.com/a", "content": "A new solar farm."},
			{"title": "Wind update", "url": "https://example.com/b", "content": ""},
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r)
			json.NewEncoder(w).Encode(map[string]any{"results": results})
		}))
		DeferCleanup(server.Close)
	})

	It("queries the general category and formats results", func() {
		tool := &aitools.WebSearchTool{BaseURL: server.URL}
		out := tool.Call(`{"query": "solar"}`)

		Expect(out).To(ContainSubstring("1. Solar farm opens"))
		Expect(out).To(ContainSubstring("https://example.com/a"))
		Expect(out).To(ContainSubstring("A new solar farm."))
		Expect(out).To(ContainSubstring("2. Wind update"))

		Expect(requests).To(HaveLen(1))
		q := requests[0].URL.Query()
		Expect(q.Get("q")).To(Equal("solar"))
		Expect(q.Get("categories")).To(Equal("general"))
		Expect(q.Get("format")).To(Equal("json"))
	})

	It("caps results at max_results", func() {
		tool := &aitools.WebSearchTool{BaseURL: server.URL}
		out := tool.Call(`{"query": "solar", "max_results": 1}`)
		Expect(out).To(ContainSubstring("1. Solar farm opens"))
		Expect(out).NotTo(ContainSubstring("Wind update"))
	})

	It("reports an empty result set", func() {
		results = nil
		tool := &aitools.WebSearchTool{BaseURL: server.URL}
		out := tool.Call(`{"query": "nothing"}`)
		Expect(out).To(Equal("No results found for: nothing"))
	})

	It("requires a query", func() {
		tool := &aitools.WebSearchTool{BaseURL: server.URL}
		out := tool.Call(`{}`)
		Expect(out).To(ContainSubstring("query is required"))
		Expect(requests).To(BeEmpty())
	})

	It("rejects malformed parameters", func() {
		tool := &aitools.WebSearchTool{BaseURL: server.URL}
		out := tool.Call(`{not json`)
		Expect(out).To(ContainSubstring("invalid parameters"))
	})

	It("surfaces non-200 responses", func() {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer failing.Close()

		tool := &aitools.WebSearchTool{BaseURL: failing.URL}
		out := tool.Call(`{"query": "q"}`)
		Expect(out).To(ContainSubstring("status 429"))
	})
})

var _ = Describe("NewsSearchTool", func() {
	It("queries the news category", func() {
		var category string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			category = r.URL.Query().Get("categories")
			json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
		}))
		defer server.Close()

		tool := &aitools.NewsSearchTool{BaseURL: server.URL}
		tool.Call(`{"query": "policy"}`)
		Expect(category).To(Equal("news"))
	})
})

var _ = Describe("BuildToolsMap", func() {
	It("resolves capability tags to tools", func() {
		tools := aitools.BuildToolsMap([]string{"web_search", "forum_search"})
		Expect(tools).To(HaveKey("web_search"))
		Expect(tools).To(HaveKey("forum_search"))
		Expect(tools).NotTo(HaveKey("news_search"))
	})

	It("skips unknown tags", func() {
		tools := aitools.BuildToolsMap([]string{"teleport"})
		Expect(tools).To(BeEmpty())
	})
})
