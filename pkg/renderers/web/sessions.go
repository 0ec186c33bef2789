package web

import (
	"crypto/subtle"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-profileform/pkg/formstate"
)

// SessionCookieName carries the browser session id.
const SessionCookieName = "profileform_session"

// DefaultSessionTTL bounds how long an idle browser session is kept.
const DefaultSessionTTL = time.Hour

type browserSession struct {
	id        string
	csrf      string
	form      *formstate.Session
	focusTags atomic.Bool
	seen      atomic.Int64
	noticed   atomic.Int64 // SubmittedAt of the last snapshot whose notice was shown
}

func (b *browserSession) touch(now time.Time) {
	b.seen.Store(now.UnixNano())
}

func (b *browserSession) validToken(token string) bool {
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(b.csrf)) == 1
}

// sessionStore keeps one form session per browser. Idle sessions older than
// ttl are swept when new ones are created; sessions with a submission in
// flight are never swept.
type sessionStore struct {
	mu      sync.Mutex
	entries map[string]*browserSession
	ttl     time.Duration
	now     func() time.Time
	newForm func(id string) *formstate.Session
}

func newSessionStore(ttl time.Duration, now func() time.Time, newForm func(id string) *formstate.Session) *sessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionStore{
		entries: make(map[string]*browserSession),
		ttl:     ttl,
		now:     now,
		newForm: newForm,
	}
}

func (s *sessionStore) get(id string) (*browserSession, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	entry, ok := s.entries[id]
	s.mu.Unlock()
	if ok {
		entry.touch(s.now())
	}
	return entry, ok
}

func (s *sessionStore) create() *browserSession {
	id := uuid.NewString()
	entry := &browserSession{
		id:   id,
		csrf: uuid.NewString(),
		form: s.newForm(id),
	}
	now := s.now()
	entry.touch(now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	s.entries[entry.id] = entry
	return entry
}

func (s *sessionStore) sweepLocked(now time.Time) {
	cutoff := now.Add(-s.ttl).UnixNano()
	for id, entry := range s.entries {
		if entry.seen.Load() >= cutoff {
			continue
		}
		if entry.form.State().Submitting() {
			continue
		}
		delete(s.entries, id)
	}
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// wait blocks until every session has finished its in-flight submission.
func (s *sessionStore) wait() {
	s.mu.Lock()
	forms := make([]*formstate.Session, 0, len(s.entries))
	for _, entry := range s.entries {
		forms = append(forms, entry.form)
	}
	s.mu.Unlock()

	for _, form := range forms {
		form.Wait()
	}
}
