package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultEndpoint = "https://api.pushover.net/1/messages.json"

// priority 1 bypasses the user's quiet hours; a restock is time-sensitive.
const messagePriority = "1"

// Pushover sends messages through the Pushover API. Credentials are injected
// at construction so the component carries no implicit environment reads.
type Pushover struct {
	client   *resty.Client
	endpoint string
	userKey  string
	apiToken string
}

func NewPushover(userKey, apiToken string) *Pushover {
	return newPushover(userKey, apiToken, defaultEndpoint)
}

func newPushover(userKey, apiToken, endpoint string) *Pushover {
	return &Pushover{
		client:   resty.New().SetTimeout(10 * time.Second),
		endpoint: endpoint,
		userKey:  userKey,
		apiToken: apiToken,
	}
}

func (p *Pushover) Send(ctx context.Context, title, message string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"token":    p.apiToken,
			"user":     p.userKey,
			"title":    title,
			"message":  message,
			"priority": messagePriority,
		}).
		Post(p.endpoint)
	if err != nil {
		return fmt.Errorf("pushover request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("pushover rejected message: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
