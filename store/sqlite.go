package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS missions (
    id TEXT PRIMARY KEY,
    operative TEXT NOT NULL,
    topic TEXT NOT NULL,
    status TEXT DEFAULT 'running',
    result TEXT,
    error TEXT,
    started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    finished_at DATETIME
);
CREATE INDEX IF NOT EXISTS idx_missions_started ON missions(started_at);
`

// NewSQLiteBundle opens (or creates) the sqlite mission log at path.
func NewSQLiteBundle(path string) (*Bundle, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Bundle{
		Missions: &SQLiteMissionStore{db: db},
		closer:   db.Close,
	}, nil
}

type SQLiteMissionStore struct {
	db *sql.DB
}

func (s *SQLiteMissionStore) CreateMission(operative, topic string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO missions (id, operative, topic, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, operative, topic, StatusRunning, time.Now(),
	)
	if err != nil {
		return "", fmt.Errorf("create mission: %w", err)
	}
	return id, nil
}

func (s *SQLiteMissionStore) CompleteMission(id, status, result, errMsg string) error {
	res, err := s.db.Exec(
		`UPDATE missions SET status = ?, result = ?, error = ?, finished_at = ? WHERE id = ?`,
		status, result, errMsg, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("complete mission: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mission %s not found", id)
	}
	return nil
}

func (s *SQLiteMissionStore) GetMission(id string) (*MissionRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, operative, topic, status, COALESCE(result, ''), COALESCE(error, ''), started_at, finished_at
		 FROM missions WHERE id = ?`, id,
	)
	m, err := scanMission(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("mission %s not found", id)
	}
	return m, err
}

func (s *SQLiteMissionStore) ListMissions(limit, offset int) ([]MissionRecord, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM missions`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count missions: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, operative, topic, status, COALESCE(result, ''), COALESCE(error, ''), started_at, finished_at
		 FROM missions ORDER BY started_at DESC LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list missions: %w", err)
	}
	defer rows.Close()

	var records []MissionRecord
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *m)
	}
	return records, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(row rowScanner) (*MissionRecord, error) {
	var m MissionRecord
	var finishedAt sql.NullTime
	err := row.Scan(&m.ID, &m.Operative, &m.Topic, &m.Status, &m.Result, &m.Error, &m.StartedAt, &finishedAt)
	if err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		m.FinishedAt = &finishedAt.Time
	}
	return &m, nil
}
