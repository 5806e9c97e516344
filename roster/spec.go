// Package roster defines the fixed set of operatives available to the
// dashboard: four specialist agents plus the full task force team that spans
// them. Everything here is pure data, built once at startup and shared
// read-only across sessions.
package roster

import "fmt"

// TeamMode tags how a team combines its members. Only collaborate exists
// today.
type TeamMode string

const ModeCollaborate TeamMode = "collaborate"

// AgentSpec is an immutable description of a single operative: who it is,
// what it is for, which model backs it, and which tool capabilities it may
// use during a mission.
type AgentSpec struct {
	ID            string
	DisplayName   string
	Role          string
	Instructions  string
	Model         string
	Tools         []string
	ShowToolCalls bool
}

// TeamSpec is an AgentSpec variant that fans a mission out to a fixed,
// ordered set of member agents. Members are always leaf AgentSpecs; teams do
// not nest.
type TeamSpec struct {
	AgentSpec
	Mode    TeamMode
	Members []AgentSpec
}

// Validate enforces the team invariants: at least one member, collaborate
// mode, and no member sharing the team's own id (the closest a flat struct
// can get to "no nesting").
func (t TeamSpec) Validate() error {
	if len(t.Members) == 0 {
		return fmt.Errorf("team %q has no members", t.ID)
	}
	if t.Mode != ModeCollaborate {
		return fmt.Errorf("team %q: unsupported mode %q", t.ID, t.Mode)
	}
	for _, m := range t.Members {
		if m.ID == t.ID {
			return fmt.Errorf("team %q cannot contain itself", t.ID)
		}
	}
	return nil
}
