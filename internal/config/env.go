package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Credentials are the Pushover keys. Required: a run without them fails
// before any page is fetched, since it could not report what it finds.
type Credentials struct {
	UserKey  string `envconfig:"PUSHOVER_USER_KEY" required:"true"`
	APIToken string `envconfig:"PUSHOVER_API_TOKEN" required:"true"`
}

// Runtime holds the optional environment knobs. STATE_FILE lets CI point the
// state at a cacheable path; RESTOCK_PROXIES is a comma-separated proxy list.
type Runtime struct {
	StateFile string   `envconfig:"STATE_FILE" default:"last_status.json"`
	Proxies   []string `envconfig:"RESTOCK_PROXIES"`
	LogLevel  string   `envconfig:"LOG_LEVEL" default:"info"`
}

// FromEnv reads credentials and runtime settings from the process
// environment.
func FromEnv() (Credentials, Runtime, error) {
	var creds Credentials
	if err := envconfig.Process("", &creds); err != nil {
		return Credentials{}, Runtime{}, fmt.Errorf("credentials: %w", err)
	}
	var rt Runtime
	if err := envconfig.Process("", &rt); err != nil {
		return Credentials{}, Runtime{}, fmt.Errorf("runtime settings: %w", err)
	}
	return creds, rt, nil
}
