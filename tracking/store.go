package tracking

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Store is an ordered set of tracked route ids persisted to a local file,
// one id per line. Route ids are upper-cased on entry so "sh1" and "SH1"
// are the same route.
type Store struct {
	path string
	ids  []string
}

// NewStore creates a store backed by the given file. Call Load before use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the tracked route list from disk. An absent file means an
// empty list, not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.ids = nil
			return nil
		}
		return err
	}
	s.ids = nil
	for _, line := range strings.Split(string(data), "\n") {
		id := normalize(line)
		if id != "" && !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
	return nil
}

// Add appends a route id to the list and persists. Adding an id that is
// already tracked is a no-op; the returned bool reports whether the list
// changed.
func (s *Store) Add(routeID string) (bool, error) {
	id := normalize(routeID)
	if id == "" || s.Contains(id) {
		return false, nil
	}
	s.ids = append(s.ids, id)
	return true, s.save()
}

// Remove drops a route id from the list and persists. Removing an id that
// was never added leaves the list unchanged.
func (s *Store) Remove(routeID string) (bool, error) {
	id := normalize(routeID)
	for i, got := range s.ids {
		if got == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true, s.save()
		}
	}
	return false, nil
}

// List returns a copy of the tracked route ids in insertion order.
func (s *Store) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Contains reports whether a route id is tracked.
func (s *Store) Contains(routeID string) bool {
	id := normalize(routeID)
	for _, got := range s.ids {
		if got == id {
			return true
		}
	}
	return false
}

func (s *Store) save() error {
	var b strings.Builder
	for _, id := range s.ids {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	return os.WriteFile(s.path, []byte(b.String()), 0o644)
}

func normalize(routeID string) string {
	return strings.ToUpper(strings.TrimSpace(routeID))
}
