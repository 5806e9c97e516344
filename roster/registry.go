package roster

// Agent identifiers. These are stable keys; display names carry the emoji
// labels shown in the UI.
const (
	NewsAnalystID     = "news_analyst"
	DataAnalystID     = "data_analyst"
	PolicyReviewerID  = "policy_reviewer"
	InnovationScoutID = "innovation_scout"
	TaskForceID       = "task_force"
)

// DefaultModel is the hosted model every operative uses unless the config
// overrides it.
const DefaultModel = "qwen/qwen3-32b"

// Registry holds the four leaf agents in their fixed dispatch order.
type Registry struct {
	NewsAnalyst     AgentSpec
	DataAnalyst     AgentSpec
	PolicyReviewer  AgentSpec
	InnovationScout AgentSpec
}

// All returns the registry members in team order.
func (r Registry) All() []AgentSpec {
	return []AgentSpec{r.NewsAnalyst, r.DataAnalyst, r.PolicyReviewer, r.InnovationScout}
}

// ByID looks up a leaf agent by identifier.
func (r Registry) ByID(id string) (AgentSpec, bool) {
	for _, a := range r.All() {
		if a.ID == id {
			return a, true
		}
	}
	return AgentSpec{}, false
}

// BuildRegistry constructs the fixed agent registry. Pure; called once at
// process start.
func BuildRegistry() Registry {
	return Registry{
		NewsAnalyst: AgentSpec{
			ID:            NewsAnalystID,
			DisplayName:   "📰 News Analyst",
			Role:          "Track recent news on sustainability initiatives",
			Instructions:  "Find the most relevant city-level green projects from the past year and summarize key findings.",
			Model:         DefaultModel,
			Tools:         []string{"web_search"},
			ShowToolCalls: true,
		},
		DataAnalyst: AgentSpec{
			ID:           DataAnalystID,
			DisplayName:  "📊 Data Analyst",
			Role:         "Analyze environmental datasets",
			Instructions: "Read the provided air quality dataset and summarize trends.",
			Model:        DefaultModel,
		},
		PolicyReviewer: AgentSpec{
			ID:            PolicyReviewerID,
			DisplayName:   "📜 Policy Reviewer",
			Role:          "Summarize government sustainability policies",
			Instructions:  "Find official city government sources and summarize their recent sustainability policy changes.",
			Model:         DefaultModel,
			Tools:         []string{"web_search"},
			ShowToolCalls: true,
		},
		InnovationScout: AgentSpec{
			ID:            InnovationScoutID,
			DisplayName:   "💡 Innovations Scout",
			Role:          "Discover cutting-edge green tech ideas",
			Instructions:  "Search for innovative urban sustainability technologies and describe them in detail.",
			Model:         DefaultModel,
			Tools:         []string{"forum_search", "web_search"},
			ShowToolCalls: true,
		},
	}
}
