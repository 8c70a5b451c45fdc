package wandb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/nunet/opencompute-monitor/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.WandB{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		PageSize: 2,
	})
	require.NoError(t, err)
	return client
}

func runEdge(id, name, config string) string {
	quoted, _ := json.Marshal(config)
	return fmt.Sprintf(`{"node": {"id": %q, "name": %q, "config": %s}}`, id, name, quoted)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(config.WandB{BaseURL: "http://localhost"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestRunsPaginates(t *testing.T) {
	pages := []string{
		`{"data": {"project": {"runs": {
			"edges": [` +
			runEdge("r1", "miner-1", `{"role": {"value": "miner"}, "hotkey": {"value": "5Fabc"}}`) + `,` +
			runEdge("r2", "miner-2", `{"role": {"value": "miner"}, "hotkey": {"value": "5Fdef"}}`) + `],
			"pageInfo": {"endCursor": "c2", "hasNextPage": true}}}}}`,
		`{"data": {"project": {"runs": {
			"edges": [` +
			runEdge("r3", "validator-1", `{"role": {"value": "validator"}, "allocated_hotkeys": {"value": ["5Fabc"]}}`) + `],
			"pageInfo": {"endCursor": "c3", "hasNextPage": false}}}}}`,
	}

	var cursors []string
	call := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "api", user)
		assert.Equal(t, "test-key", pass)
		assert.Equal(t, "/graphql", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		cursor, _ := jsonparser.GetString(body, "variables", "cursor")
		cursors = append(cursors, cursor)
		perPage, _ := jsonparser.GetInt(body, "variables", "perPage")
		assert.EqualValues(t, 2, perPage)

		fmt.Fprint(w, pages[call])
		call++
	})

	records, err := client.Runs(context.Background(), "neuralinternet", "opencompute")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"", "c2"}, cursors)

	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "miner-1", records[0].Name)
	assert.JSONEq(t, `{"role": "miner", "hotkey": "5Fabc"}`, string(records[0].Config))
	assert.JSONEq(t, `{"role": "validator", "allocated_hotkeys": ["5Fabc"]}`, string(records[2].Config))
}

func TestRunsEmptyProject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"project": {"runs": {"edges": [], "pageInfo": {"endCursor": null, "hasNextPage": false}}}}}`)
	})

	records, err := client.Runs(context.Background(), "e", "p")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRunsStopsWhenCursorRepeats(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"data": {"project": {"runs": {"edges": [`+
			runEdge("r1", "miner-1", `{"role": {"value": "miner"}}`)+
			`], "pageInfo": {"endCursor": "c1", "hasNextPage": true}}}}}`)
	})

	records, err := client.Runs(context.Background(), "e", "p")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, records, 2)
}

func TestRunsProjectNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"project": null}}`)
	})

	_, err := client.Runs(context.Background(), "e", "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorContains(t, err, "e/missing")
}

func TestRunsGraphQLError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"errors": [{"message": "rate limited"}], "data": null}`)
	})

	_, err := client.Runs(context.Background(), "e", "p")
	assert.ErrorContains(t, err, "rate limited")
}

func TestRunsUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Runs(context.Background(), "e", "p")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRunsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Runs(context.Background(), "e", "p")
	assert.ErrorContains(t, err, "unexpected status 502")
}

func TestViewer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"viewer": {"id": "VXNlcjox", "username": "operator"}}}`)
	})

	username, err := client.Viewer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "operator", username)
}

func TestViewerAnonymous(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"viewer": null}}`)
	})

	_, err := client.Viewer(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
