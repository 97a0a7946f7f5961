package session

import (
	"sync"

	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

// SubmissionGuard rejects a second submission of the same form from the same session
// while the first is still being processed.
type SubmissionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewSubmissionGuard creates an empty guard.
func NewSubmissionGuard() *SubmissionGuard {
	return &SubmissionGuard{inFlight: make(map[string]struct{})}
}

// Acquire marks (sessionID, formKey) as in flight. The returned release func must be
// called when the submission finishes. It returns ErrSubmissionInFlight if the pair
// is already in flight.
func (g *SubmissionGuard) Acquire(sessionID, formKey string) (func(), error) {
	key := sessionID + "|" + formKey
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return nil, apperrors.ErrSubmissionInFlight
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}, nil
}
