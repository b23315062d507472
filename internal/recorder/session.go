// Package recorder manages move-recording sessions on top of storage.
package recorder

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/ncube"
	"github.com/SeamusWaldron/ncube/internal/storage"
)

// recLog is the sub-logger for the recorder module.
var recLog zerolog.Logger = log.With().Str("module", "recorder").Logger()

var (
	ErrAlreadyRecording = errors.New("recorder: session already recording")
	ErrNotRecording     = errors.New("recorder: no session recording")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session manages a move recording session.
type Session struct {
	db *storage.DB

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	onMove func(ncube.Move)
}

// NewSession creates a new session manager.
func NewSession(db *storage.DB) *Session {
	return &Session{
		db:          db,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// SetMoveCallback sets the callback invoked after a move is persisted.
func (s *Session) SetMoveCallback(cb func(ncube.Move)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ID returns the active session's ID, empty when idle.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Start begins a new recording session for a cube of the given size.
func (s *Session) Start(cubeSize int, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrAlreadyRecording
	}

	id, err := s.sessionRepo.Create(cubeSize, notes)
	if err != nil {
		return "", err
	}

	s.state = StateRecording
	s.sessionID = id
	s.startTime = time.Now()
	s.moveIndex = 0

	recLog.Info().Str("session", id).Int("size", cubeSize).Msg("Recording started")
	return id, nil
}

// RecordMove persists a move against the active session.
func (s *Session) RecordMove(m ncube.Move) error {
	s.mu.Lock()

	if s.state != StateRecording {
		s.mu.Unlock()
		return ErrNotRecording
	}

	when := m.Time
	if when.IsZero() {
		when = time.Now()
	}
	tsMs := when.Sub(s.startTime).Milliseconds()

	_, err := s.moveRepo.Add(s.sessionID, s.moveIndex, tsMs, m)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.moveIndex++
	cb := s.onMove
	s.mu.Unlock()

	recLog.Debug().Str("move", m.Notation()).Int64("ts_ms", tsMs).Msg("Move recorded")
	if cb != nil {
		cb(m)
	}
	return nil
}

// End finishes the active session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return err
	}

	recLog.Info().Str("session", s.sessionID).Int("moves", s.moveIndex).Msg("Recording ended")
	s.state = StateEnded
	return nil
}

// MoveCount returns the number of moves recorded so far.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}
