package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendOrder(t *testing.T) {
	h := &History{}
	h.Append(Entry{Role: RoleUser, Message: "first"})
	h.Append(Entry{Role: RoleAssistant, Message: "second", RawCSV: "a,b"})
	h.Append(Entry{Role: RoleUser, Message: "third"})

	require.Equal(t, 3, h.Len())
	entries := h.Entries()
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "third", entries[2].Message)
	for _, e := range entries {
		assert.False(t, e.At.IsZero())
	}
}

func TestHistoryKeepsExplicitTimestamp(t *testing.T) {
	at := time.Date(2026, 1, 15, 10, 42, 0, 0, time.UTC)
	h := &History{}
	h.Append(Entry{Role: RoleUser, At: at})
	assert.Equal(t, at, h.Entries()[0].At)
}

func TestHistoryGenerated(t *testing.T) {
	h := &History{}
	assert.Equal(t, 0, h.Generated())
	h.Append(Entry{Role: RoleUser})
	h.Append(Entry{Role: RoleAssistant, Message: "failed"})
	h.Append(Entry{Role: RoleAssistant, RawCSV: "a,b"})
	assert.Equal(t, 2, h.Generated())
}

func TestHistoryLastResult(t *testing.T) {
	h := &History{}
	_, ok := h.LastResult()
	assert.False(t, ok)

	h.Append(Entry{Role: RoleAssistant, RawCSV: "old,csv"})
	h.Append(Entry{Role: RoleAssistant, Message: "Error: upstream timeout"})
	h.Append(Entry{Role: RoleAssistant, RawCSV: "new,csv"})

	got, ok := h.LastResult()
	require.True(t, ok)
	assert.Equal(t, "new,csv", got.RawCSV, "failure entries are skipped, latest CSV wins")
}

func TestHistoryConcurrentAppendAndRead(t *testing.T) {
	h := &History{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Append(Entry{Role: RoleUser, Message: "request"})
			h.Append(Entry{Role: RoleAssistant, Message: "done", RawCSV: "a,b"})
		}()
		go func() {
			defer wg.Done()
			for _, e := range h.Entries() {
				_ = e.Message
			}
			h.LastResult()
			h.Generated()
			h.Len()
		}()
	}
	wg.Wait()

	assert.Equal(t, 40, h.Len())
	assert.Equal(t, 20, h.Generated())
	_, ok := h.LastResult()
	assert.True(t, ok)
}

func TestStoreGetCreatesAndReuses(t *testing.T) {
	s := NewStore()
	id, h := s.Get("")
	require.NotEmpty(t, id)
	h.Append(Entry{Role: RoleUser, Message: "hello"})

	id2, h2 := s.Get(id)
	assert.Equal(t, id, id2)
	assert.Equal(t, 1, h2.Len())

	id3, h3 := s.Get("not-a-known-id")
	assert.NotEqual(t, id, id3)
	assert.Equal(t, 0, h3.Len())
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	id, h := s.Get("")
	h.Append(Entry{Role: RoleUser})
	s.Clear(id)

	_, fresh := s.Get(id)
	assert.Equal(t, 0, fresh.Len())
}
