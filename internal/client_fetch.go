package internal

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	memoize "github.com/kofalt/go-memoize"

	"github.com/rm-hull/prop-firms-api/internal/metrics"
)

// ErrMissingSheetURL is returned when no sheet location has been configured.
var ErrMissingSheetURL = errors.New("SHEET_CSV_URL is not set")

// HTTPStatusError is returned when the remote server responds with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	Status     string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("http status response from %s: %s", e.URL, e.Status)
}

type SheetClient interface {
	// FetchCSV returns the sheet text, from cache unless nocache is set.
	FetchCSV(ctx context.Context, nocache bool) (string, error)
	// Refresh fetches the sheet and replaces the cached copy.
	Refresh(ctx context.Context) (string, error)
	LastUpdated() *time.Time
	Check() SheetCheck
}

type sheetClient struct {
	url    string
	client *http.Client
	cache  *memoize.Memoizer

	mu          sync.RWMutex
	lastUpdated time.Time
	lastErr     error
}

func NewSheetClient(url string, revalidate, timeout time.Duration) SheetClient {
	return &sheetClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		cache:  memoize.NewMemoizer(revalidate, 2*revalidate),
	}
}

func (sc *sheetClient) FetchCSV(ctx context.Context, nocache bool) (string, error) {
	if sc.url == "" {
		return "", ErrMissingSheetURL
	}

	if nocache {
		return sc.fetch(ctx)
	}

	// The fetch is shared with concurrent callers, so it must outlive the
	// request that happened to start it.
	value, err, cached := sc.cache.Memoize(sc.url, func() (interface{}, error) {
		return sc.fetch(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	if cached {
		metrics.SheetFetches.WithLabelValues("cached").Inc()
	}
	return value.(string), nil
}

func (sc *sheetClient) Refresh(ctx context.Context) (string, error) {
	if sc.url == "" {
		return "", ErrMissingSheetURL
	}

	text, err := sc.fetch(ctx)
	if err != nil {
		return "", err
	}
	sc.cache.Storage.SetDefault(sc.url, text)
	return text, nil
}

func (sc *sheetClient) fetch(ctx context.Context) (string, error) {
	text, err := sc.get(ctx)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.lastErr = err
	if err != nil {
		metrics.SheetFetches.WithLabelValues("error").Inc()
		return "", err
	}

	sc.lastUpdated = time.Now()
	metrics.SheetFetches.WithLabelValues("live").Inc()
	return text, nil
}

func (sc *sheetClient) get(ctx context.Context) (string, error) {
	log.Printf("GET %s", sc.url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sc.url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := sc.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch from %s", sc.url)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close body: %v", err)
		}
	}()

	if resp.StatusCode > 299 {
		return "", &HTTPStatusError{URL: sc.url, Status: resp.Status, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}
	return string(body), nil
}

func (sc *sheetClient) LastUpdated() *time.Time {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	if sc.lastUpdated.IsZero() {
		return nil
	}
	t := sc.lastUpdated
	return &t
}

// SheetCheck reports healthy while a sheet is configured and the most recent
// fetch (if any) succeeded.
type SheetCheck struct {
	client *sheetClient
}

func (sc *sheetClient) Check() SheetCheck {
	return SheetCheck{client: sc}
}

func (c SheetCheck) Pass() bool {
	if c.client == nil || c.client.url == "" {
		return false
	}
	c.client.mu.RLock()
	defer c.client.mu.RUnlock()
	return c.client.lastErr == nil
}

func (c SheetCheck) Name() string {
	return "firm-sheet"
}
