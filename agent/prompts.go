package agent

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"taskforce/aitools"
	"taskforce/roster"
)

//go:embed agent.md
var agentPromptTemplate string

// buildSystemPrompt fills the briefing template for one operative.
func buildSystemPrompt(spec roster.AgentSpec, tools map[string]aitools.Tool) string {
	prompt := agentPromptTemplate
	prompt = strings.Replace(prompt, "{{ROLE}}", spec.Role, 1)
	prompt = strings.Replace(prompt, "{{INSTRUCTIONS}}", spec.Instructions, 1)
	prompt = strings.Replace(prompt, "{{TOOLS}}", formatTools(tools), 1)
	return prompt
}

func formatTools(tools map[string]aitools.Tool) string {
	if len(tools) == 0 {
		return "## Available Tools\n\nNone. Answer from your own knowledge."
	}

	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("## Available Tools\n\n")
	for _, name := range names {
		t := tools[name]
		fmt.Fprintf(&sb, "### %s\n%s\nInput schema: %s\n\n", t.ToolName(), t.ToolDescription(), t.ToolPayloadSchema())
	}
	return strings.TrimRight(sb.String(), "\n")
}

// synthesisPrompt is the collaborate-mode merge instruction for the team
// runner's final turn.
func synthesisPrompt(team roster.TeamSpec) string {
	var sb strings.Builder
	sb.WriteString("You are the coordinator of the ")
	sb.WriteString(team.DisplayName)
	sb.WriteString(".\n\n")
	sb.WriteString(team.Instructions)
	sb.WriteString("\n\nYou will receive each member's findings. Merge them into one coherent markdown report. ")
	sb.WriteString("Respond with your report inside <ANSWER></ANSWER> tags.")
	return sb.String()
}
