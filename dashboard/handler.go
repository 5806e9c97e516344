package dashboard

import "github.com/hashicorp/go-hclog"

// wsMissionHandler forwards agent lifecycle events to the browser as
// agent_event frames. Terminal frames (report/error/warning) are sent by the
// connection loop itself, so MissionCompleted and MissionFailed are no-ops.
type wsMissionHandler struct {
	conn *wsConn
	log  hclog.Logger
}

func newWSMissionHandler(conn *wsConn, log hclog.Logger) *wsMissionHandler {
	return &wsMissionHandler{conn: conn, log: log}
}

func (h *wsMissionHandler) sendAgentEvent(payload AgentEventPayload) {
	env, err := NewEvent(TypeAgentEvent, payload)
	if err != nil {
		h.log.Warn("failed to build agent event", "error", err)
		return
	}
	if err := h.conn.writeEnvelope(env); err != nil {
		h.log.Warn("failed to send agent event", "error", err)
	}
}

func (h *wsMissionHandler) MissionStarted(operative, topic string) {}

func (h *wsMissionHandler) AgentStarted(agentName string) {
	h.sendAgentEvent(AgentEventPayload{Event: "agent_started", Agent: agentName})
}

func (h *wsMissionHandler) CallingTool(agentName, toolName, input string) {
	h.sendAgentEvent(AgentEventPayload{Event: "calling_tool", Agent: agentName, Tool: toolName, Input: input})
}

func (h *wsMissionHandler) ToolComplete(agentName, toolName string) {
	h.sendAgentEvent(AgentEventPayload{Event: "tool_complete", Agent: agentName, Tool: toolName})
}

func (h *wsMissionHandler) AgentCompleted(agentName string) {
	h.sendAgentEvent(AgentEventPayload{Event: "agent_completed", Agent: agentName})
}

func (h *wsMissionHandler) MissionCompleted(string) {}

func (h *wsMissionHandler) MissionFailed(error) {}
