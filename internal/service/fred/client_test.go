package fred

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const observationsFixture = `{
	"realtime_start": "2024-01-05",
	"realtime_end": "2024-01-05",
	"observation_start": "2024-01-01",
	"observation_end": "2024-01-05",
	"units": "lin",
	"count": 4,
	"observations": [
		{"realtime_start": "2024-01-05", "date": "2024-01-01", "value": "5.33"},
		{"realtime_start": "2024-01-05", "date": "2024-01-02", "value": "."},
		{"realtime_start": "2024-01-05", "date": "2024-01-03", "value": "5.34"},
		{"realtime_start": "2024-01-05", "date": "2024-01-04", "value": "5.35"}
	]
}`

func newTestClient(url string) *Client {
	return New(url, "test-key", 5*time.Second, 6000, 100)
}

func TestFetchParsesObservations(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(observationsFixture))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	series, err := client.Fetch(context.Background(), "EFFR", start, end)
	require.NoError(t, err)

	assert.Equal(t, "EFFR", series.ID)
	// The "." placeholder on the 2nd is skipped.
	require.Equal(t, 3, series.Len())
	assert.Equal(t, 5.33, series.First().Value)
	assert.Equal(t, 5.35, series.Latest().Value)

	assert.Equal(t, []string{"EFFR"}, gotQuery["series_id"])
	assert.Equal(t, []string{"test-key"}, gotQuery["api_key"])
	assert.Equal(t, []string{"json"}, gotQuery["file_type"])
	assert.Equal(t, []string{"2024-01-01"}, gotQuery["observation_start"])
	assert.Equal(t, []string{"2024-01-05"}, gotQuery["observation_end"])
}

func TestFetchOmitsZeroEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("observation_end"))
		_, _ = w.Write([]byte(`{"observations": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	series, err := client.Fetch(context.Background(), "SOFR", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	require.NoError(t, err)
	assert.True(t, series.Empty())
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_code": 400, "error_message": "Bad Request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), "NOPE", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "NOPE", fetchErr.SeriesID)
}

func TestFetchContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, "EFFR", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), "EFFR", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
