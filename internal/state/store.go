// Package state persists the last observed status per product between runs.
// The file is a flat JSON object keyed by product name, human-readable and
// safe to delete: deleting it just resets notification history.
package state

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yourneighborhoodchef/restock/internal/classifier"
)

// Store reads the whole file at run start and writes the whole file at run
// end. No locking across runs; the scheduler is expected to serialize them.
type Store struct {
	path     string
	statuses map[string]classifier.Status
}

func NewStore(path string) *Store {
	return &Store{
		path:     path,
		statuses: make(map[string]classifier.Status),
	}
}

// Load reads the state file. A missing file is a first run, not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file %s: %w", s.path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse state file %s: %w", s.path, err)
	}

	for name, status := range raw {
		s.statuses[name] = classifier.ParseStatus(status)
	}
	return nil
}

// Get returns the last recorded status, or false if the product has never
// been observed.
func (s *Store) Get(name string) (classifier.Status, bool) {
	status, ok := s.statuses[name]
	return status, ok
}

func (s *Store) Set(name string, status classifier.Status) {
	s.statuses[name] = status
}

// Save writes the full mapping back to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.statuses, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file %s: %w", s.path, err)
	}
	return nil
}
