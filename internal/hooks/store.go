package hooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/bretwardjames/ghp-sub000/internal/storage"
)

// Store persists hook definitions in a single JSON document:
//
//	{ "hooks": [ {...}, ... ] }
//
// Every call reads the document fresh and every mutation rewrites it
// atomically with 0600 permissions. Registry order is the order hooks were
// added.
type Store struct {
	path string
}

// NewStore returns a store backed by the document at path. The file does
// not need to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing document path.
func (s *Store) Path() string {
	return s.path
}

type storedDocument struct {
	Hooks []json.RawMessage `json:"hooks"`
}

type document struct {
	Hooks []Hook `json:"hooks"`
}

// load reads all valid hooks. Entries that fail to decode or validate are
// dropped so documents written by newer versions still load, as are later
// duplicates of a name. A missing file is an empty store.
func (s *Store) load() ([]Hook, error) {
	var doc storedDocument
	if err := storage.LoadJSON(s.path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Hook{}, nil
		}
		return nil, fmt.Errorf("load hooks from %s: %w", s.path, err)
	}

	hooks := make([]Hook, 0, len(doc.Hooks))
	seen := make(map[string]bool, len(doc.Hooks))
	for _, raw := range doc.Hooks {
		var h Hook
		if err := json.Unmarshal(raw, &h); err != nil {
			continue
		}
		h.applyDefaults()
		if h.Validate() != nil || seen[h.Name] {
			continue
		}
		seen[h.Name] = true
		hooks = append(hooks, h)
	}
	return hooks, nil
}

func (s *Store) save(hooks []Hook) error {
	if hooks == nil {
		hooks = []Hook{}
	}
	if err := storage.SaveJSON(s.path, document{Hooks: hooks}); err != nil {
		return fmt.Errorf("save hooks: %w", err)
	}
	return nil
}

func indexOf(hooks []Hook, name string) int {
	return slices.IndexFunc(hooks, func(h Hook) bool { return h.Name == name })
}

// List returns all hooks in registry order.
func (s *Store) List() ([]Hook, error) {
	return s.load()
}

// Get looks up a hook by name.
func (s *Store) Get(name string) (Hook, error) {
	hooks, err := s.load()
	if err != nil {
		return Hook{}, err
	}
	i := indexOf(hooks, name)
	if i < 0 {
		return Hook{}, fmt.Errorf("%w: %s", ErrHookNotFound, name)
	}
	return hooks[i], nil
}

// Add validates h, fills in defaults and appends it to the registry.
// Returns ErrHookExists if the name is taken and ErrInvalidHook if the
// definition is invalid; the store is unchanged in both cases.
func (s *Store) Add(h Hook) error {
	h.applyDefaults()
	if err := h.Validate(); err != nil {
		return err
	}

	hooks, err := s.load()
	if err != nil {
		return err
	}
	if indexOf(hooks, h.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrHookExists, h.Name)
	}

	return s.save(append(hooks, h))
}

// Update applies a partial edit to the named hook, keeping its position.
// Renaming onto an existing name returns ErrHookExists.
func (s *Store) Update(name string, u HookUpdate) (Hook, error) {
	hooks, err := s.load()
	if err != nil {
		return Hook{}, err
	}
	i := indexOf(hooks, name)
	if i < 0 {
		return Hook{}, fmt.Errorf("%w: %s", ErrHookNotFound, name)
	}

	if u.Name != nil && *u.Name != name && indexOf(hooks, *u.Name) >= 0 {
		return Hook{}, fmt.Errorf("%w: %s", ErrHookExists, *u.Name)
	}

	updated := hooks[i]
	u.Apply(&updated)
	updated.applyDefaults()
	if err := updated.Validate(); err != nil {
		return Hook{}, err
	}

	hooks[i] = updated
	if err := s.save(hooks); err != nil {
		return Hook{}, err
	}
	return updated, nil
}

// Remove deletes the named hook.
func (s *Store) Remove(name string) error {
	hooks, err := s.load()
	if err != nil {
		return err
	}
	i := indexOf(hooks, name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrHookNotFound, name)
	}
	return s.save(slices.Delete(hooks, i, i+1))
}

// Enable turns the named hook on.
func (s *Store) Enable(name string) error {
	return s.setEnabled(name, true)
}

// Disable turns the named hook off without deleting it.
func (s *Store) Disable(name string) error {
	return s.setEnabled(name, false)
}

func (s *Store) setEnabled(name string, enabled bool) error {
	_, err := s.Update(name, HookUpdate{Enabled: &enabled})
	return err
}

// EnabledForEvent returns the enabled hooks subscribed to e, in registry
// order.
func (s *Store) EnabledForEvent(e Event) ([]Hook, error) {
	hooks, err := s.load()
	if err != nil {
		return nil, err
	}

	var matches []Hook
	for _, h := range hooks {
		if h.Enabled && h.Event == e {
			matches = append(matches, h)
		}
	}
	return matches, nil
}

// HasEnabledForEvent reports whether any enabled hook listens to e. An
// unreadable store counts as having none.
func (s *Store) HasEnabledForEvent(e Event) bool {
	hooks, err := s.EnabledForEvent(e)
	return err == nil && len(hooks) > 0
}

// Names returns every hook name in registry order.
func (s *Store) Names() ([]string, error) {
	hooks, err := s.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(hooks))
	for i, h := range hooks {
		names[i] = h.Name
	}
	return names, nil
}
