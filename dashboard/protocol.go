package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// MessageType identifies a websocket message.
type MessageType string

const (
	// Client → server
	TypeLaunchMission MessageType = "launch_mission"

	// Server → client
	TypeMissionAck     MessageType = "mission_ack"
	TypeAgentEvent     MessageType = "agent_event"
	TypeMissionReport  MessageType = "mission_report"
	TypeMissionError   MessageType = "mission_error"
	TypeMissionWarning MessageType = "mission_warning"
)

// Envelope is the wire frame for every websocket message.
type Envelope struct {
	Type      MessageType     `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// LaunchMissionPayload asks the server to dispatch a topic.
type LaunchMissionPayload struct {
	Operative string `json:"operative"`
	Topic     string `json:"topic"`
}

// MissionAckPayload confirms a launch was accepted and names the resolved
// operative (the team fallback may differ from what the client sent).
type MissionAckPayload struct {
	MissionID string `json:"missionId,omitempty"`
	Operative string `json:"operative"`
	StartedAt string `json:"startedAt"`
}

// AgentEventPayload streams agent progress during a dispatch.
type AgentEventPayload struct {
	Event string `json:"event"` // agent_started | calling_tool | tool_complete | agent_completed
	Agent string `json:"agent"`
	Tool  string `json:"tool,omitempty"`
	Input string `json:"input,omitempty"`
}

// MissionReportPayload is the terminal success frame.
type MissionReportPayload struct {
	Operative   string `json:"operative"`
	BannerClass string `json:"bannerClass"`
	Icon        string `json:"icon"`
	Report      string `json:"report"`
}

// MissionErrorPayload is the terminal failure frame.
type MissionErrorPayload struct {
	Message string `json:"message"`
}

// MissionWarningPayload is the terminal frame for short-circuited launches
// (blank topic, empty result).
type MissionWarningPayload struct {
	Message string `json:"message"`
}

// NewEvent builds a one-way envelope with a fresh request ID.
func NewEvent(t MessageType, payload any) (*Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", t, err)
	}
	return &Envelope{Type: t, RequestID: uuid.New().String(), Payload: data}, nil
}

// NewResponse builds an envelope answering a client request.
func NewResponse(requestID string, t MessageType, payload any) (*Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", t, err)
	}
	return &Envelope{Type: t, RequestID: requestID, Payload: data}, nil
}

// DecodePayload unmarshals an envelope payload into v.
func DecodePayload(env *Envelope, v any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("%s: empty payload", env.Type)
	}
	return json.Unmarshal(env.Payload, v)
}
