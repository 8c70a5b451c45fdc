package api

import (
	"sync"
	"time"

	"gitlab.com/nunet/opencompute-monitor/models"
)

// SnapshotStore keeps the most recent successful snapshot and the outcome of
// the latest refresh attempt. A failed refresh never replaces a good snapshot.
type SnapshotStore struct {
	mu          sync.RWMutex
	snapshot    *models.Snapshot
	lastErr     error
	lastAttempt time.Time
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Update records a refresh attempt.
func (s *SnapshotStore) Update(snapshot *models.Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAttempt = time.Now().UTC()
	s.lastErr = err
	if err == nil && snapshot != nil {
		s.snapshot = snapshot
	}
}

// Latest returns the current snapshot, or nil with the last refresh error
// when none has succeeded yet.
func (s *SnapshotStore) Latest() (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.lastErr
}

// Status describes the refresh state for the status endpoint.
type Status struct {
	SnapshotID  string     `json:"snapshot_id,omitempty"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	LastAttempt *time.Time `json:"last_attempt,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	Miners      int        `json:"miners"`
	GPUs        int64      `json:"gpus"`
}

func (s *SnapshotStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Status
	if !s.lastAttempt.IsZero() {
		at := s.lastAttempt
		st.LastAttempt = &at
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	if s.snapshot != nil {
		taken := s.snapshot.TakenAt
		st.SnapshotID = s.snapshot.ID
		st.TakenAt = &taken
		st.Miners = len(s.snapshot.Rows)
		st.GPUs = s.snapshot.GrandTotal()
	}
	return st
}
