package behaviors

import (
	"sync"

	"github.com/google/uuid"
	"github.com/telemetrytv/wsrp"
)

const (
	SessionPortletHandle = "session"
	// SessionExpires is the session lifetime, in seconds, reported to the
	// consumer.
	SessionExpires = 300
)

// SessionMarkupBehavior opens a producer owned session on every markup call
// and reports it in the response's session context.
type SessionMarkupBehavior struct {
	*wsrp.BaseMarkupBehavior

	mu       sync.Mutex
	sessions map[string]bool
}

var _ wsrp.ResponseModifier = &SessionMarkupBehavior{}

func NewSessionMarkupBehavior(registry *wsrp.BehaviorRegistry) *SessionMarkupBehavior {
	b := &SessionMarkupBehavior{sessions: map[string]bool{}}
	b.BaseMarkupBehavior = wsrp.NewBaseMarkupBehavior(registry, b)
	b.RegisterHandle(SessionPortletHandle)
	return b
}

func (b *SessionMarkupBehavior) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	return "session", nil
}

func (b *SessionMarkupBehavior) ModifyResponseIfNeeded(resp *wsrp.MarkupResponse) {
	sessionID := uuid.NewString()

	b.mu.Lock()
	b.sessions[sessionID] = true
	b.mu.Unlock()

	resp.SessionContext = &wsrp.SessionContext{SessionID: sessionID, Expires: SessionExpires}
}

// Sessions returns the ids of the sessions that are still open.
func (b *SessionMarkupBehavior) Sessions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	sessions := make([]string, 0, len(b.sessions))
	for sessionID := range b.sessions {
		sessions = append(sessions, sessionID)
	}
	return sessions
}

func (b *SessionMarkupBehavior) ReleaseSessions(req *wsrp.ReleaseSessions) (*wsrp.ReleaseSessionsResponse, error) {
	b.IncrementCallCount()

	b.mu.Lock()
	defer b.mu.Unlock()

	resp := &wsrp.ReleaseSessionsResponse{}
	for _, sessionID := range req.SessionIDs {
		if !b.sessions[sessionID] {
			resp.FailedSessions = append(resp.FailedSessions, sessionID)
			continue
		}
		delete(b.sessions, sessionID)
	}
	return resp, nil
}
