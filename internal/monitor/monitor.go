// Package monitor runs one complete check pass over the configured products.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/yourneighborhoodchef/restock/internal/classifier"
	"github.com/yourneighborhoodchef/restock/internal/logging"
	"github.com/yourneighborhoodchef/restock/internal/ratelimit"
	"github.com/yourneighborhoodchef/restock/internal/state"
)

// DefaultInterval is the pause between consecutive product checks.
const DefaultInterval = time.Second

// Runner executes a single run: fetch, classify, diff against the last run,
// notify on a not-in-stock → in-stock transition, persist.
type Runner struct {
	targets  []Target
	fetcher  Fetcher
	notifier Notifier
	store    *state.Store

	// Interval spaces product checks out. Zero disables pacing.
	Interval time.Duration
}

func NewRunner(targets []Target, fetcher Fetcher, notifier Notifier, store *state.Store) *Runner {
	return &Runner{
		targets:  targets,
		fetcher:  fetcher,
		notifier: notifier,
		store:    store,
		Interval: DefaultInterval,
	}
}

// Run checks every target in order. Fetch and notification failures are
// downgraded per product and never abort the pass; only state file errors
// are returned.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.store.Load(); err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var pacer *ratelimit.Pacer
	if r.Interval > 0 {
		pacer = ratelimit.NewPacer(r.Interval, 1)
		defer pacer.Stop()
	}

	results := make([]Result, 0, len(r.targets))
	for _, t := range r.targets {
		if pacer != nil {
			pacer.Wait()
		}

		status := r.check(ctx, t)
		prev, seen := r.store.Get(t.Name)

		res := Result{
			Name:     t.Name,
			Status:   status,
			Previous: prev,
			FirstRun: !seen,
		}

		if shouldNotify(prev, seen, status) {
			res.Notified = r.announce(ctx, t)
		}

		// Record even unknown so the file always reflects the latest
		// observation. Unknown never suppresses a later notification.
		r.store.Set(t.Name, status)

		logging.Info().
			Str("product", t.Name).
			Str("status", string(status)).
			Bool("notified", res.Notified).
			Msg("checked")

		results = append(results, res)
	}

	if err := r.store.Save(); err != nil {
		return results, fmt.Errorf("save state: %w", err)
	}
	return results, nil
}

func (r *Runner) check(ctx context.Context, t Target) classifier.Status {
	body, err := r.fetcher.Fetch(ctx, t.URL)
	if err != nil {
		logging.Warn().Err(err).Str("product", t.Name).Msg("fetch failed")
		return classifier.Unknown
	}
	return t.Rule.Classify(body)
}

func (r *Runner) announce(ctx context.Context, t Target) bool {
	message := fmt.Sprintf("%s is in stock\n%s", t.Name, t.URL)
	if err := r.notifier.Send(ctx, t.Name, message); err != nil {
		logging.Warn().Err(err).Str("product", t.Name).Msg("notification failed")
		return false
	}
	logging.Info().Str("product", t.Name).Msg("notification sent")
	return true
}

// shouldNotify is the transition rule: alert exactly when the new status is
// in_stock and the previous one was anything else, including never-seen.
func shouldNotify(prev classifier.Status, seen bool, next classifier.Status) bool {
	if next != classifier.InStock {
		return false
	}
	return !seen || prev != classifier.InStock
}
