package agent

import (
	"context"
	"fmt"
	"strings"

	"taskforce/aitools"
	"taskforce/llm"
	"taskforce/roster"
	"taskforce/streamers"
)

// Team runs the full task force in collaborate mode: members report in
// fixed order, then a synthesis turn merges their findings into one
// proposal. Members run sequentially — at most one dispatch is ever in
// flight, so there is nothing to parallelize.
type Team struct {
	spec     roster.TeamSpec
	provider llm.Provider
	handler  streamers.MissionHandler

	// memberTools overrides per-member tool maps, keyed by agent id (tests)
	memberTools map[string]map[string]aitools.Tool
}

// TeamOptions configures a new Team.
type TeamOptions struct {
	Spec        roster.TeamSpec
	Provider    llm.Provider
	Handler     streamers.MissionHandler
	MemberTools map[string]map[string]aitools.Tool
}

// NewTeam creates the collaborate-mode runner. The spec's invariants are
// checked here so a malformed team fails at construction, not mid-mission.
func NewTeam(opts TeamOptions) (*Team, error) {
	if err := opts.Spec.Validate(); err != nil {
		return nil, err
	}

	var handler streamers.MissionHandler = streamers.NopHandler{}
	if opts.Handler != nil {
		handler = opts.Handler
	}

	return &Team{
		spec:        opts.Spec,
		provider:    opts.Provider,
		handler:     handler,
		memberTools: opts.MemberTools,
	}, nil
}

// Run fans the topic out to every member, then synthesizes one report.
func (t *Team) Run(ctx context.Context, topic string) (*RunResult, error) {
	var findings []string

	for _, member := range t.spec.Members {
		runner := New(Options{
			Spec:     member,
			Provider: t.provider,
			Tools:    t.memberTools[member.ID],
			Handler:  t.handler,
		})

		result, err := runner.Run(ctx, topic)
		if err != nil {
			return nil, fmt.Errorf("team member %s: %w", member.ID, err)
		}
		if result.Content == "" {
			continue
		}
		findings = append(findings, fmt.Sprintf("## Findings from %s\n\n%s", member.DisplayName, result.Content))
	}

	if len(findings) == 0 {
		return &RunResult{}, nil
	}

	session := llm.NewSession(t.provider, t.spec.Model, synthesisPrompt(t.spec))

	prompt := fmt.Sprintf("Mission topic: %s\n\n%s", topic, strings.Join(findings, "\n\n"))
	content, err := session.SendStream(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("team synthesis: %w", err)
	}

	answer := parseTurn(content).Answer
	if answer == "" {
		// Some models skip the tags on a plain synthesis request; take the
		// raw content rather than reporting an empty mission.
		answer = strings.TrimSpace(content)
	}

	return &RunResult{Content: answer}, nil
}
