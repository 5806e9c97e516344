package aitools

// Tool defines the interface for agent tools
type Tool interface {
	// ToolName returns the name of the tool
	ToolName() string

	// ToolDescription returns a description of what the tool does
	ToolDescription() string

	// ToolPayloadSchema returns the JSON schema for the tool's input parameters
	ToolPayloadSchema() Schema

	// Call executes the tool with the given parameters and returns a stringified response
	Call(params string) string
}

// Capability tags used by the roster to declare which tools an agent carries.
const (
	CapabilityWebSearch   = "web_search"
	CapabilityNewsSearch  = "news_search"
	CapabilityForumSearch = "forum_search"
)

// BuildToolsMap resolves capability tags into tool instances. Unknown tags are
// skipped: the roster is a closed set, so an unknown tag is a programming
// error surfaced by the roster tests, not a runtime condition.
func BuildToolsMap(capabilities []string) map[string]Tool {
	tools := make(map[string]Tool)
	for _, c := range capabilities {
		switch c {
		case CapabilityWebSearch:
			tools[CapabilityWebSearch] = NewWebSearchTool()
		case CapabilityNewsSearch:
			tools[CapabilityNewsSearch] = NewNewsSearchTool()
		case CapabilityForumSearch:
			tools[CapabilityForumSearch] = NewForumSearchTool()
		}
	}
	return tools
}
