// Package config loads the tracked product list and the runtime settings.
// Products and retailer rules live in a TOML file; a default list is
// embedded so the binary runs with no arguments. Credentials come from the
// process environment only.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/yourneighborhoodchef/restock/internal/classifier"
)

//go:embed products.toml
var defaultProducts []byte

type Config struct {
	Products  []Product             `toml:"products"`
	Retailers map[string]RuleConfig `toml:"retailers"`
}

// Product is static configuration, never mutated at runtime.
type Product struct {
	Name     string `toml:"name"`
	URL      string `toml:"url"`
	Retailer string `toml:"retailer"`
}

// RuleConfig is the on-disk form of a classification rule. Kind selects the
// implementation; the other fields are kind-specific.
type RuleConfig struct {
	Kind string `toml:"kind"`

	// marker
	Block      []string `toml:"block"`
	OutOfStock []string `toml:"out_of_stock"`
	InStock    []string `toml:"in_stock"`

	// selector
	Selector  string `toml:"selector"`
	Attribute string `toml:"attribute"`

	// json
	Path string `toml:"path"`
}

// Build turns the config into a classifier rule.
func (rc RuleConfig) Build() (classifier.Rule, error) {
	switch rc.Kind {
	case "marker":
		return classifier.MarkerRule{
			Block:      rc.Block,
			OutOfStock: rc.OutOfStock,
			InStock:    rc.InStock,
		}, nil
	case "selector":
		return classifier.SelectorRule{
			Selector:   rc.Selector,
			Attribute:  rc.Attribute,
			InStock:    rc.InStock,
			OutOfStock: rc.OutOfStock,
		}, nil
	case "json":
		return classifier.JSONRule{
			Path:       rc.Path,
			InStock:    rc.InStock,
			OutOfStock: rc.OutOfStock,
		}, nil
	default:
		return nil, fmt.Errorf("unknown rule kind %q", rc.Kind)
	}
}

// Load reads and validates a product config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return parse(data)
}

// LoadDefault returns the embedded product list.
func LoadDefault() (*Config, error) {
	return parse(defaultProducts)
}

func parse(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if len(c.Products) == 0 {
		return fmt.Errorf("config has no products")
	}
	for i, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("product %d: missing name", i)
		}
		if p.URL == "" {
			return fmt.Errorf("product %q: missing url", p.Name)
		}
		if p.Retailer == "" {
			return fmt.Errorf("product %q: missing retailer", p.Name)
		}
		rc, ok := c.Retailers[p.Retailer]
		if !ok {
			return fmt.Errorf("product %q: retailer %q has no rule", p.Name, p.Retailer)
		}
		if err := rc.check(); err != nil {
			return fmt.Errorf("retailer %q: %w", p.Retailer, err)
		}
	}
	return nil
}

func (rc RuleConfig) check() error {
	switch rc.Kind {
	case "marker":
		if len(rc.InStock) == 0 && len(rc.OutOfStock) == 0 {
			return fmt.Errorf("marker rule needs in_stock or out_of_stock markers")
		}
	case "selector":
		if rc.Selector == "" {
			return fmt.Errorf("selector rule needs a selector")
		}
	case "json":
		if rc.Path == "" {
			return fmt.Errorf("json rule needs a path")
		}
	default:
		return fmt.Errorf("unknown rule kind %q", rc.Kind)
	}
	return nil
}
