package registrymock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &Config{}
	srv := New(cfg, zap.NewNop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	cfg.BaseURL = ts.URL
	return ts
}

func listServers(t *testing.T, ts *httptest.Server, query string) ServersResponse {
	t.Helper()

	resp, err := http.Get(ts.URL + "/v0/servers" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ServersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestListServers_Defaults(t *testing.T) {
	ts := startTestServer(t)

	body := listServers(t, ts, "")

	assert.Len(t, body.Servers, 10)
	assert.Equal(t, 10, body.Metadata.Count)
	assert.Empty(t, body.Metadata.NextCursor)
	assert.Equal(t, "dice-roller", body.Servers[0].Name)

	for _, entry := range body.Servers {
		_, err := uuid.Parse(entry.ID)
		assert.NoError(t, err, "entry id %q is not a UUID", entry.ID)
	}
}

// Walking the cursor must visit every entry exactly once and terminate.
func TestListServers_PaginationWalk(t *testing.T) {
	ts := startTestServer(t)

	seen := make(map[string]bool)
	cursor := ""
	pages := 0
	for {
		query := "?limit=3"
		if cursor != "" {
			query += "&cursor=" + cursor
		}
		body := listServers(t, ts, query)
		pages++

		for _, entry := range body.Servers {
			require.False(t, seen[entry.ID], "entry %s returned twice", entry.Name)
			seen[entry.ID] = true
		}

		if body.Metadata.NextCursor == "" {
			break
		}
		cursor = body.Metadata.NextCursor
		require.Less(t, pages, 20, "pagination did not terminate")
	}

	assert.Len(t, seen, 10)
	assert.Equal(t, 4, pages)
}

func TestListServers_UnknownCursorRestarts(t *testing.T) {
	ts := startTestServer(t)

	body := listServers(t, ts, "?cursor=not-a-real-id")
	assert.Len(t, body.Servers, 10)
	assert.Equal(t, "dice-roller", body.Servers[0].Name)
}

func TestListServers_LimitTooLarge(t *testing.T) {
	ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/v0/servers?limit=101")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetServer(t *testing.T) {
	ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/v0/servers/05529bff-3d65-4e3d-8e82-6f2f269f8190")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry ServerEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))

	assert.Equal(t, "calculator", entry.Name)
	require.Len(t, entry.Packages, 1)
	assert.Equal(t, "uvx", entry.Packages[0].RegistryName)
	assert.Equal(t, "@mcpeval/calculator", entry.Packages[0].Name)
	assert.Equal(t, "3.0.0", entry.Packages[0].Version)
	require.Len(t, entry.Packages[0].PackageArguments, 1)
	assert.Equal(t, "mcp-calculator", entry.Packages[0].PackageArguments[0].Value)
}

func TestGetServer_NotFound(t *testing.T) {
	ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/v0/servers/" + uuid.NewString())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Server not found", body["detail"])
}

// The list response must not leak package detail; it only appears on the
// single-entry endpoint.
func TestListServers_NoPackagesInList(t *testing.T) {
	ts := startTestServer(t)

	body := listServers(t, ts, "")
	for _, entry := range body.Servers {
		assert.Nil(t, entry.Packages)
	}
}

func TestHealth(t *testing.T) {
	ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}
