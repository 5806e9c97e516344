package agent

import (
	"context"
	"fmt"

	"taskforce/aitools"
	"taskforce/llm"
	"taskforce/roster"
	"taskforce/streamers"
)

// maxTurns caps the tool loop. A well-behaved model answers in a handful of
// turns; the cap keeps a confused one from spinning forever.
const maxTurns = 8

// Agent runs missions for a single AgentSpec: one reasoning/tool loop per
// topic, streamed through a MissionHandler.
type Agent struct {
	spec     roster.AgentSpec
	provider llm.Provider
	tools    map[string]aitools.Tool
	handler  streamers.MissionHandler
}

// Options configures a new Agent.
type Options struct {
	// Spec is the operative to run
	Spec roster.AgentSpec
	// Provider is the LLM backend resolved from config
	Provider llm.Provider
	// Tools overrides the spec's capability tags (optional; used by tests)
	Tools map[string]aitools.Tool
	// Handler receives lifecycle events (optional; defaults to NopHandler)
	Handler streamers.MissionHandler
}

// New creates an agent runtime from an AgentSpec.
func New(opts Options) *Agent {
	tools := opts.Tools
	if tools == nil {
		tools = aitools.BuildToolsMap(opts.Spec.Tools)
	}

	var handler streamers.MissionHandler = streamers.NopHandler{}
	if opts.Handler != nil {
		handler = opts.Handler
	}

	return &Agent{
		spec:     opts.Spec,
		provider: opts.Provider,
		tools:    tools,
		handler:  handler,
	}
}

// Run executes one mission topic to completion: stream a turn, execute any
// tool call, feed the observation back, repeat until the model answers.
func (a *Agent) Run(ctx context.Context, topic string) (*RunResult, error) {
	a.handler.AgentStarted(a.spec.DisplayName)

	session := llm.NewSession(a.provider, a.spec.Model, buildSystemPrompt(a.spec, a.tools))

	input := topic
	var finalAnswer string

	for turn := 0; turn < maxTurns; turn++ {
		content, err := session.SendStream(ctx, input, nil)
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", a.spec.ID, err)
		}

		parsed := parseTurn(content)

		if parsed.Answer != "" {
			finalAnswer = parsed.Answer
		}

		if parsed.Action == "" {
			break
		}

		if a.spec.ShowToolCalls {
			a.handler.CallingTool(a.spec.DisplayName, parsed.Action, parsed.ActionInput)
		}

		tool, ok := a.tools[parsed.Action]
		if !ok {
			input = fmt.Sprintf("<OBSERVATION>\nError: Tool '%s' not found\n</OBSERVATION>", parsed.Action)
			continue
		}

		result := tool.Call(parsed.ActionInput)

		if a.spec.ShowToolCalls {
			a.handler.ToolComplete(a.spec.DisplayName, parsed.Action)
		}

		input = fmt.Sprintf("<OBSERVATION>\n%s\n</OBSERVATION>", result)
	}

	a.handler.AgentCompleted(a.spec.DisplayName)

	return &RunResult{Content: finalAnswer}, nil
}
