package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewMemoryBundle creates a Bundle backed entirely by in-memory stores
func NewMemoryBundle() *Bundle {
	return &Bundle{
		Missions: &MemoryMissionStore{missions: make(map[string]*MissionRecord)},
	}
}

type MemoryMissionStore struct {
	mu       sync.Mutex
	missions map[string]*MissionRecord
}

func (s *MemoryMissionStore) CreateMission(operative, topic string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.missions[id] = &MissionRecord{
		ID:        id,
		Operative: operative,
		Topic:     topic,
		Status:    StatusRunning,
		StartedAt: time.Now(),
	}
	return id, nil
}

func (s *MemoryMissionStore) CompleteMission(id, status, result, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.missions[id]
	if !ok {
		return fmt.Errorf("mission %s not found", id)
	}
	m.Status = status
	m.Result = result
	m.Error = errMsg
	now := time.Now()
	m.FinishedAt = &now
	return nil
}

func (s *MemoryMissionStore) GetMission(id string) (*MissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.missions[id]
	if !ok {
		return nil, fmt.Errorf("mission %s not found", id)
	}
	record := *m
	return &record, nil
}

func (s *MemoryMissionStore) ListMissions(limit, offset int) ([]MissionRecord, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]MissionRecord, 0, len(s.missions))
	for _, m := range s.missions {
		all = append(all, *m)
	}
	// Newest first, matching the sqlite backend's ORDER BY
	sort.Slice(all, func(i, j int) bool {
		return all[i].StartedAt.After(all[j].StartedAt)
	})

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}
