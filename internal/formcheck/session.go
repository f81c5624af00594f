package formcheck

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/acquire"
)

const (
	snapshotCacheSize   = 32 * 1024 * 1024 // per session
	snapshotCacheExpire = 10 * 60          // seconds
)

// Session ties one analyzed video to its evidence frame lookups. It
// owns the decode handle scope for that video: at most one session per
// client is open at a time, and releasing it cancels any in-flight
// analysis. Snapshot lookups are cached, since users tap the same
// evidence frames repeatedly.
type Session struct {
	VideoID string

	source acquire.VideoSource
	cancel context.CancelFunc
	cache  *freecache.Cache

	mu       sync.Mutex
	released bool
}

func NewSession(videoID string, source acquire.VideoSource, cancel context.CancelFunc) *Session {
	return &Session{
		VideoID: videoID,
		source:  source,
		cancel:  cancel,
		cache:   freecache.NewCache(snapshotCacheSize),
	}
}

// FrameAt materializes the video frame nearest to the given timestamp.
// It returns nil on any decode problem - evidence display degrades,
// it never fails the caller.
func (s *Session) FrameAt(ctx context.Context, at time.Duration) []byte {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	cacheKey := []byte(fmt.Sprintf("frame::%d", at.Milliseconds()))
	if frameBytes, err := s.cache.Get(cacheKey); err == nil {
		log.Tracef("found frame at %s for video [%s] in cache", at, s.VideoID)
		return frameBytes
	}

	frameBytes, err := s.source.SnapshotAt(ctx, s.VideoID, at)
	if err != nil {
		log.Debugf("snapshot video [%s] at %s: %s", s.VideoID, at, err)
		return nil
	}

	if err := s.cache.Set(cacheKey, frameBytes, snapshotCacheExpire); err != nil {
		log.Debugf("cache frame at %s for video [%s]: %s", at, s.VideoID, err)
	}

	return frameBytes
}

// Release cancels any in-flight analysis for this session and drops
// the snapshot cache. Safe to call more than once.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	s.cancel()
	s.cache.Clear()
}

// SessionStore keeps the open analysis session per client. Starting a
// new session for a client releases the previous one, which also
// cancels its analysis if still running.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

func (store *SessionStore) Put(clientID string, session *Session) {
	store.mu.Lock()
	prev := store.sessions[clientID]
	store.sessions[clientID] = session
	store.mu.Unlock()

	if prev != nil {
		log.Debugf("replacing open session of client [%s] (video [%s])", clientID, prev.VideoID)
		prev.Release()
	}
}

func (store *SessionStore) Get(clientID string) (*Session, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	session, ok := store.sessions[clientID]
	return session, ok
}

// Remove releases and forgets the client's session, reporting whether
// there was one.
func (store *SessionStore) Remove(clientID string) bool {
	store.mu.Lock()
	session, ok := store.sessions[clientID]
	delete(store.sessions, clientID)
	store.mu.Unlock()

	if ok {
		session.Release()
	}
	return ok
}

func (store *SessionStore) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.sessions)
}

// ReleaseAll is used on server shutdown.
func (store *SessionStore) ReleaseAll() {
	store.mu.Lock()
	sessions := make([]*Session, 0, len(store.sessions))
	for _, session := range store.sessions {
		sessions = append(sessions, session)
	}
	store.sessions = make(map[string]*Session)
	store.mu.Unlock()

	for _, session := range sessions {
		session.Release()
	}
}
