package oauthmock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// A grant can be taken exactly once regardless of how many codes are in the
// store or in what order they were inserted.
func TestGrantStore_SingleUse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := NewMemoryGrantStore()

		n := rapid.IntRange(1, 50).Draw(t, "n")
		codes := make([]string, n)
		for i := range codes {
			codes[i] = fmt.Sprintf("mock-auth-code-%d-%s", i, randomHex(4))
			store.Put(&IssuedGrant{
				Code:     codes[i],
				ClientID: rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "client_id"),
				Resource: "https://api",
			})
		}
		require.Equal(t, n, store.Len())

		for _, code := range codes {
			grant, ok := store.Take(code)
			require.True(t, ok)
			require.Equal(t, code, grant.Code)

			_, again := store.Take(code)
			require.False(t, again)
		}
		require.Equal(t, 0, store.Len())
	})
}

// Exactly one of many concurrent redemptions of the same code may succeed.
func TestGrantStore_ConcurrentTake(t *testing.T) {
	store := NewMemoryGrantStore()
	store.Put(&IssuedGrant{Code: "contested", Resource: "https://api"})

	const workers = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := store.Take("contested"); ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, store.Len())
}

// Two concurrent token requests for the same code: exactly one 200, the
// other a redemption error, and no second token set.
func TestToken_ConcurrentRedemption(t *testing.T) {
	srv, ts := startTestServer(t)

	code := issueCode(t, ts, "client")

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	const attempts = 8
	statuses := make(chan int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.PostForm(ts.URL+"/token", form)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	okCount, badCount := 0, 0
	for status := range statuses {
		switch status {
		case http.StatusOK:
			okCount++
		case http.StatusBadRequest:
			badCount++
		}
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, attempts-1, badCount)
	assert.Equal(t, 0, srv.GrantCount())
}

// Registrations yield pairwise distinct client IDs even for identical names.
func TestRegister_DistinctClientIDs(t *testing.T) {
	_, ts := startTestServer(t)

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-zA-Z ]{0,20}`).Draw(t, "client_name")
		count := rapid.IntRange(2, 10).Draw(t, "count")

		seen := make(map[string]bool)
		for i := 0; i < count; i++ {
			body, err := json.Marshal(map[string]string{"client_name": name})
			require.NoError(t, err)

			resp, err := http.Post(ts.URL+"/register", "application/json",
				bytes.NewReader(body))
			require.NoError(t, err)

			var client RegisteredClient
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&client))
			resp.Body.Close()

			require.False(t, seen[client.ClientID], "duplicate client_id %s", client.ClientID)
			seen[client.ClientID] = true
		}
	})
}
