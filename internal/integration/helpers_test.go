package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"updatedAt": {},
	"reference": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func recordRequest(app *TestApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

// cleanMap drops fields whose values differ between runs, at any depth.
func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch v := m[k].(type) {
		case map[string]any:
			cleanMap(v)
		case []any:
			for _, item := range v {
				if nested, ok := item.(map[string]any); ok {
					cleanMap(nested)
				}
			}
		}
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read %s", path)

	_, err = db.Exec(context.Background(), string(content))
	require.NoError(t, err, "failed to execute %s", path)
}

// resetState empties every table, seeds the catalog and drops leftover locks.
func resetState(t testing.TB, app *TestApp) {
	t.Helper()

	executeSQLFile(t, app.DB, "testdata/reset.sql")
	executeSQLFile(t, app.DB, "testdata/catalog_up.sql")

	require.NoError(t, app.Redis.FlushDB(context.Background()).Err())
}

func seatStates(t testing.TB, db *pgxpool.Pool, showID int) map[int]*int {
	t.Helper()

	rows, err := db.Query(context.Background(),
		`SELECT id, booking_id FROM seats WHERE show_id = $1 ORDER BY id`, showID)
	require.NoError(t, err)
	defer rows.Close()

	states := make(map[int]*int)
	for rows.Next() {
		var id int
		var bookingID *int
		require.NoError(t, rows.Scan(&id, &bookingID))
		states[id] = bookingID
	}
	require.NoError(t, rows.Err())

	return states
}
