package streamers

// MissionHandler receives mission lifecycle events during a dispatch.
// Implementations exist for the terminal (streamers/cli) and for the
// dashboard's websocket channel.
type MissionHandler interface {
	// MissionStarted fires once when a dispatch begins
	MissionStarted(operative string, topic string)

	// AgentStarted fires when an agent (or team member) begins its turn
	AgentStarted(agentName string)

	// CallingTool fires when an agent invokes a tool
	CallingTool(agentName string, toolName string, input string)

	// ToolComplete fires when a tool finishes
	ToolComplete(agentName string, toolName string)

	// AgentCompleted fires when an agent finishes its turn
	AgentCompleted(agentName string)

	// MissionCompleted fires with the final report text
	MissionCompleted(report string)

	// MissionFailed fires when the dispatch ends in an error
	MissionFailed(err error)
}

// NopHandler discards all events. Useful for tests and for callers that only
// care about the final MissionResult.
type NopHandler struct{}

func (NopHandler) MissionStarted(string, string)      {}
func (NopHandler) AgentStarted(string)                {}
func (NopHandler) CallingTool(string, string, string) {}
func (NopHandler) ToolComplete(string, string)        {}
func (NopHandler) AgentCompleted(string)              {}
func (NopHandler) MissionCompleted(string)            {}
func (NopHandler) MissionFailed(error)                {}
