package api

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-listing-go/internal/dialogue"
	"voice-listing-go/internal/logger"
	"voice-listing-go/internal/session"
)

func TestKeyedLocksSerializeAndForget(t *testing.T) {
	var k keyedLocks
	var wg sync.WaitGroup
	inside, maxInside := 0, 0
	var mu sync.Mutex

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := k.acquire("s1")
			defer release()
			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
	assert.Equal(t, 0, k.len())
}

func TestTurnsOnUnknownSessionsLeaveNoLocks(t *testing.T) {
	store, err := session.NewMemoryStore(16, time.Hour)
	require.NoError(t, err)
	log := logger.Discard()
	srv := NewServer(dialogue.New(nil, dialogue.WithLogger(log.Component("dialogue"))), store, log)
	h := srv.Routes()

	for i := 0; i < 50; i++ {
		rec := do(t, h, http.MethodPost, fmt.Sprintf("/conversations/missing-%d/turns", i), turnRequest{Utterance: "onions"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
	assert.Equal(t, 0, srv.locks.len())
}
