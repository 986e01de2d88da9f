package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Theme is the persisted UI theme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// document is the on-disk shape of the preferences file
type document struct {
	Favorites []string `json:"favorites"`
	Theme     Theme    `json:"theme"`
}

// Store persists the two cross-session user preferences: the favorites id
// list and the theme. The file is read once at construction and rewritten
// synchronously on every mutation; there is no batching or dirty flag.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// NewStore loads preferences from path. A missing file is first run:
// empty favorites, dark theme.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		doc: document{
			Favorites: []string{},
			Theme:     ThemeDark,
		},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file %s: %w", path, err)
	}
	if s.doc.Favorites == nil {
		s.doc.Favorites = []string{}
	}
	if s.doc.Theme != ThemeLight {
		s.doc.Theme = ThemeDark
	}

	return s, nil
}

// Favorites returns the persisted favorite ids in insertion order
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.doc.Favorites))
	copy(out, s.doc.Favorites)
	return out
}

// SetFavorites replaces the persisted favorites list and writes it out
func (s *Store) SetFavorites(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Favorites = make([]string, len(ids))
	copy(s.doc.Favorites, ids)
	return s.write()
}

// Theme returns the persisted theme preference
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Theme
}

// SetTheme persists the theme preference. Unknown values are rejected.
func (s *Store) SetTheme(theme Theme) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("unknown theme %q", theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Theme = theme
	return s.write()
}

func (s *Store) write() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences file %s: %w", s.path, err)
	}
	return nil
}
