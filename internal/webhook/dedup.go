package webhook

import (
	"sync"
	"time"
)

const (
	// SeenTTL is how long processed event ids are remembered. PayPal retries
	// failed deliveries for up to three days.
	SeenTTL = 72 * time.Hour

	// CleanupInterval is how often expired entries are purged.
	CleanupInterval = 10 * time.Minute
)

// SeenStore remembers processed webhook event ids so duplicate deliveries do
// not trigger duplicate notifications.
type SeenStore struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewSeenStore(ttl time.Duration) *SeenStore {
	s := &SeenStore{
		seen:        make(map[string]time.Time),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// MarkSeen records the event id and reports whether this is its first
// delivery. Events without an id are never treated as duplicates.
func (s *SeenStore) MarkSeen(eventID string) bool {
	if eventID == "" {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if expires, exists := s.seen[eventID]; exists && time.Now().Before(expires) {
		return false
	}
	s.seen[eventID] = time.Now().Add(s.ttl)
	return true
}

func (s *SeenStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expire()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *SeenStore) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, expires := range s.seen {
		if now.After(expires) {
			delete(s.seen, id)
		}
	}
}

// Close stops the background cleanup and waits for it to finish.
func (s *SeenStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}
