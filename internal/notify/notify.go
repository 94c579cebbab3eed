// Package notify delivers push notifications for stock transitions.
package notify

import "context"

// Notifier sends a push message. Delivery failures are reported as errors
// and left to the caller; there is no retry, the next scheduled run will
// re-evaluate anyway.
type Notifier interface {
	Send(ctx context.Context, title, message string) error
}
