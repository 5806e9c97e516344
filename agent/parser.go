package agent

import "strings"

// parsedTurn is one assistant message broken into its tagged sections.
// A turn either carries an action (tool call) or an answer; when the model
// emits both, the action wins and the answer is kept as a candidate final.
type parsedTurn struct {
	Reasoning   string
	Action      string
	ActionInput string
	Answer      string
}

// parseTurn extracts <REASONING>, <ACTION>, <ACTION_INPUT> and <ANSWER>
// sections from a complete assistant message. Unterminated sections run to
// the end of the message, which happens when generation stops at a stop
// sequence.
func parseTurn(content string) parsedTurn {
	return parsedTurn{
		Reasoning:   extractTag(content, "REASONING"),
		Action:      extractTag(content, "ACTION"),
		ActionInput: extractTag(content, "ACTION_INPUT"),
		Answer:      extractTag(content, "ANSWER"),
	}
}

func extractTag(content, tag string) string {
	open := "<" + tag + ">"
	close := "</" + tag + ">"

	start := strings.Index(content, open)
	if start == -1 {
		return ""
	}
	rest := content[start+len(open):]

	if end := strings.Index(rest, close); end != -1 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
