package monitor

import (
	"context"

	"github.com/yourneighborhoodchef/restock/internal/classifier"
)

// Target is one product to check: its page and the rule that reads it.
type Target struct {
	Name     string
	URL      string
	Retailer string
	Rule     classifier.Rule
}

// Result records the outcome of one product check within a run.
type Result struct {
	Name     string
	Status   classifier.Status
	Previous classifier.Status
	FirstRun bool
	Notified bool
}

// Fetcher retrieves a product page body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Notifier delivers the in-stock alert.
type Notifier interface {
	Send(ctx context.Context, title, message string) error
}
