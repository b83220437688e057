package fred

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"SpreadWatch/internal/domain/models"
	drepo "SpreadWatch/internal/domain/repository"
	xhttp "SpreadWatch/pkg/http"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the FRED observations endpoint.
	DefaultBaseURL = "https://api.stlouisfed.org/fred/series/observations"

	dateLayout = "2006-01-02"
)

// FetchError wraps a per-series retrieval failure: transport, HTTP status,
// or decode. Not retried automatically; the monitor isolates it to the
// definitions that use the series.
type FetchError struct {
	SeriesID string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fred: fetch %s: %v", e.SeriesID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client implements a SeriesSource backed by the FRED observations API.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
	limiter *rate.Limiter
}

// New creates a FRED client. ratePerMinute throttles requests client-side
// (FRED allows 120/min); burst is the token-bucket burst size.
func New(baseURL, apiKey string, timeout time.Duration, ratePerMinute, burst int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if ratePerMinute <= 0 {
		ratePerMinute = 120
	}
	if burst <= 0 {
		burst = 10
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter: rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), burst),
	}
}

var _ drepo.SeriesSource = (*Client)(nil)

type observationPayload struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type observationsResponse struct {
	Observations []observationPayload `json:"observations"`
}

// Fetch retrieves the observations of seriesID over [start, end].
// Observations whose value does not parse as a float are skipped; FRED
// reports missing data points as ".". Honors ctx cancellation and
// deadline end to end.
func (c *Client) Fetch(ctx context.Context, seriesID string, start, end time.Time) (models.Series, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return models.Series{}, &FetchError{SeriesID: seriesID, Err: err}
	}

	params := map[string][]string{
		"series_id":         {seriesID},
		"api_key":           {c.apiKey},
		"file_type":         {"json"},
		"observation_start": {start.Format(dateLayout)},
	}
	if !end.IsZero() {
		params["observation_end"] = []string{end.Format(dateLayout)}
	}

	var payload observationsResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL,
		QueryParams: params,
	}, &payload)
	if err != nil {
		return models.Series{}, &FetchError{SeriesID: seriesID, Err: err}
	}

	obs := make([]models.Observation, 0, len(payload.Observations))
	for _, o := range payload.Observations {
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		d, err := time.Parse(dateLayout, o.Date)
		if err != nil {
			return models.Series{}, &FetchError{SeriesID: seriesID, Err: fmt.Errorf("bad observation date %q: %w", o.Date, err)}
		}
		obs = append(obs, models.Observation{Date: d, Value: v})
	}

	return models.NewSeries(seriesID, obs), nil
}
