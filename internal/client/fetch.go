package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	http "github.com/bogdanfinn/fhttp"

	"github.com/yourneighborhoodchef/restock/internal/headers"
)

// Kind categorizes fetch failures. The orchestrator downgrades all of them
// to an unknown status; the kind only matters for logging.
type Kind int

const (
	KindNetwork Kind = iota
	KindTimeout
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http_error"
	default:
		return "network_error"
	}
}

// FetchError is the failure detail for a single page fetch.
type FetchError struct {
	Kind       Kind
	StatusCode int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	case KindTimeout:
		return fmt.Sprintf("fetch %s: timeout: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// PageFetcher issues a single GET per product page with a browser header
// set. No retries: a failed check is retried by the next scheduled run.
type PageFetcher struct {
	client *ProxiedClient
}

func NewPageFetcher() (*PageFetcher, error) {
	c, err := CreateClient()
	if err != nil {
		return nil, err
	}
	return &PageFetcher{client: c}, nil
}

// Fetch returns the response body for a 2xx response and a *FetchError for
// anything else, including non-2xx statuses. A bot wall served with a 403 is
// an error here, never an out-of-stock signal.
func (f *PageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: url, Err: err}
	}
	req.Header = headers.BuildHeaders()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Kind: KindHTTP, StatusCode: resp.StatusCode, URL: url}
	}

	return body, nil
}

func transportError(url string, err error) *FetchError {
	kind := KindNetwork
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		kind = KindTimeout
	}
	return &FetchError{Kind: kind, URL: url, Err: err}
}
