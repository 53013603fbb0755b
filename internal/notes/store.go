package notes

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Store persists per-card note text as a single JSON document keyed by slot
// key. The file also carries a plan id, assigned on first write, that exports
// and logs use to identify the plan.
type Store struct {
	Path string

	loaded bool
	doc    document
}

type document struct {
	PlanID string            `json:"plan_id,omitempty"`
	Notes  map[string]string `json:"notes"`
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".timeline", "notes.json"), nil
}

func NewDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Store{Path: path}, nil
}

func (s *Store) load() error {
	if s == nil {
		return errors.New("note store is nil")
	}
	if strings.TrimSpace(s.Path) == "" {
		return errors.New("note store path is empty")
	}
	if s.loaded {
		return nil
	}
	s.doc = document{Notes: map[string]string{}}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return err
	}
	if s.doc.Notes == nil {
		s.doc.Notes = map[string]string{}
	}
	s.loaded = true
	return nil
}

func (s *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, append(data, '\n'), 0o644)
}

// PlanID returns the stable plan identifier, generating and persisting one on
// first use.
func (s *Store) PlanID() (string, error) {
	if err := s.load(); err != nil {
		return "", err
	}
	if s.doc.PlanID != "" {
		return s.doc.PlanID, nil
	}
	s.doc.PlanID = uuid.NewString()
	if err := s.flush(); err != nil {
		return "", err
	}
	return s.doc.PlanID, nil
}

// Get returns the note text for key; a missing key reads as empty.
func (s *Store) Get(key string) (string, error) {
	if err := s.load(); err != nil {
		return "", err
	}
	return s.doc.Notes[key], nil
}

// Set stores text under key. Text that trims to empty deletes the key so the
// file never accumulates blank entries.
func (s *Store) Set(key, text string) error {
	if err := s.load(); err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("note key is empty")
	}
	if strings.TrimSpace(text) == "" {
		delete(s.doc.Notes, key)
	} else {
		s.doc.Notes[key] = text
	}
	return s.flush()
}

// RemoveMatching deletes every note whose key starts with prefix and returns
// the number removed. An empty prefix clears all notes.
func (s *Store) RemoveMatching(prefix string) (int, error) {
	if err := s.load(); err != nil {
		return 0, err
	}
	removed := 0
	for key := range s.doc.Notes {
		if strings.HasPrefix(key, prefix) {
			delete(s.doc.Notes, key)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.flush()
}

// Keys returns the stored note keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.doc.Notes))
	for key := range s.doc.Notes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
