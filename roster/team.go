package roster

// BuildTeam constructs the full task force over the registry's agents, in
// registry order. Pure; the team's run behavior lives in the agent package.
func BuildTeam(r Registry) TeamSpec {
	return TeamSpec{
		AgentSpec: AgentSpec{
			ID:            TaskForceID,
			DisplayName:   "🌐 Sustainability Task Force",
			Role:          "Coordinate the specialist agents into a single mission report",
			Instructions:  "Collaborate to produce a comprehensive sustainability proposal for the city.",
			Model:         DefaultModel,
			ShowToolCalls: true,
		},
		Mode:    ModeCollaborate,
		Members: r.All(),
	}
}
