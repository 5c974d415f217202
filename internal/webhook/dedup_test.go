package webhook

import (
	"testing"
	"time"
)

func TestSeenStore(t *testing.T) {
	t.Run("first delivery is fresh, second is a duplicate", func(t *testing.T) {
		store := NewSeenStore(time.Minute)
		defer func() { _ = store.Close() }()

		if !store.MarkSeen("WH-1") {
			t.Error("first delivery reported as duplicate")
		}
		if store.MarkSeen("WH-1") {
			t.Error("second delivery not reported as duplicate")
		}
		if !store.MarkSeen("WH-2") {
			t.Error("unrelated event reported as duplicate")
		}
	})

	t.Run("expired entries are fresh again", func(t *testing.T) {
		store := NewSeenStore(10 * time.Millisecond)
		defer func() { _ = store.Close() }()

		if !store.MarkSeen("WH-1") {
			t.Fatal("first delivery reported as duplicate")
		}
		time.Sleep(20 * time.Millisecond)
		if !store.MarkSeen("WH-1") {
			t.Error("delivery after ttl reported as duplicate")
		}
	})

	t.Run("empty event id is never a duplicate", func(t *testing.T) {
		store := NewSeenStore(time.Minute)
		defer func() { _ = store.Close() }()

		if !store.MarkSeen("") || !store.MarkSeen("") {
			t.Error("empty id treated as duplicate")
		}
	})
}
