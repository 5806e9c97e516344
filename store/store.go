// Package store records dispatched missions. The default backend is
// in-memory (nothing survives the process); the sqlite backend is opt-in via
// the storage config block.
package store

import "time"

// Mission statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusEmpty     = "empty"
	StatusFailed    = "failed"
)

// MissionRecord is one dispatched mission and its outcome.
type MissionRecord struct {
	ID         string     `json:"id"`
	Operative  string     `json:"operative"`
	Topic      string     `json:"topic"`
	Status     string     `json:"status"`
	Result     string     `json:"result,omitempty"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// MissionStore tracks mission dispatches and their outcomes.
type MissionStore interface {
	CreateMission(operative, topic string) (id string, err error)
	CompleteMission(id, status, result, errMsg string) error
	GetMission(id string) (*MissionRecord, error)
	ListMissions(limit, offset int) ([]MissionRecord, int, error)
}

// Bundle holds the stores plus their shared closer.
type Bundle struct {
	Missions MissionStore
	closer   func() error
}

// Close cleans up the bundle resources
func (b *Bundle) Close() error {
	if b.closer != nil {
		return b.closer()
	}
	return nil
}
