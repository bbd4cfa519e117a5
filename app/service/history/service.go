package history

import (
	"sync"
	"time"

	"github.com/samber/do"
)

const maxTurns = 10

// Turn is one user input + model output exchange within a session.
type Turn struct {
	UserText  string
	ModelText string
	CreatedAt time.Time
}

type sessionHistory struct {
	mu    sync.Mutex
	turns []Turn
}

func (h *sessionHistory) append(turn Turn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.turns) >= maxTurns {
		h.turns = append(h.turns[1:], turn)
	} else {
		h.turns = append(h.turns, turn)
	}
}

func (h *sessionHistory) snapshot() []Turn {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]Turn, len(h.turns))
	copy(result, h.turns)

	return result
}

// Service keeps bounded per-session conversation history for the process
// lifetime. State is purely transient and lost on restart; durable chat
// records live in storage and are never read back into this store.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*sessionHistory
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		sessions: make(map[string]*sessionHistory),
	}, nil
}

// session returns the history for sessionID, creating it on first reference.
// Appends on different sessions do not contend with each other; the shared
// map lock is only held for lookup and creation.
func (s *Service) session(sessionID string) *sessionHistory {
	s.mu.RLock()
	h, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if ok {
		return h
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok = s.sessions[sessionID]; !ok {
		h = &sessionHistory{}
		s.sessions[sessionID] = h
	}

	return h
}

// Snapshot returns a copy of the session's turns in chronological order.
func (s *Service) Snapshot(sessionID string) []Turn {
	return s.session(sessionID).snapshot()
}

// Append records a completed exchange. Once a session holds maxTurns entries,
// each append evicts the single oldest turn.
func (s *Service) Append(sessionID string, turn Turn) {
	s.session(sessionID).append(turn)
}
