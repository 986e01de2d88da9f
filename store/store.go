// Package store is the single source of truth for what the user currently
// sees: the last applied market snapshot, the view selection and the
// favorites set. The projection it derives is a pure function of those three
// inputs.
package store

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/DanaramPradeep/crypto-tracker/coingecko"
	"github.com/DanaramPradeep/crypto-tracker/events"
	"github.com/DanaramPradeep/crypto-tracker/prefs"
)

// Asset is one coin of the current snapshot plus the derived
// changed-since-previous flag
type Asset struct {
	coingecko.Coin
	// PriceChanged is true when the coin's price differs from the
	// immediately preceding snapshot. Coins absent from the previous
	// snapshot count as unchanged.
	PriceChanged bool
}

// Store holds the snapshot set, the view selection and the favorites set.
// All mutation is serialized through one mutex; Emit fires on the shared
// subscription manager whenever the projection may have changed.
type Store struct {
	mu sync.Mutex

	coins []Asset // arrival order from the last fetch

	searchTerm    string
	sortKey       SortKey
	favoritesOnly bool

	favSet   map[string]struct{}
	favOrder []string // insertion order, for display stability

	prefs    *prefs.Store
	collator *collate.Collator
	events   *events.SubscriptionManager
}

// NewStore creates a store seeded with the persisted favorites list
func NewStore(p *prefs.Store, sm *events.SubscriptionManager) *Store {
	s := &Store{
		sortKey:  SortMarketCapDesc,
		favSet:   make(map[string]struct{}),
		prefs:    p,
		collator: collate.New(language.English),
		events:   sm,
	}

	if p != nil {
		for _, id := range p.Favorites() {
			if _, ok := s.favSet[id]; ok {
				continue
			}
			s.favSet[id] = struct{}{}
			s.favOrder = append(s.favOrder, id)
		}
	}

	return s
}

// ApplySnapshot replaces the stored snapshot wholesale. Coins present in
// both old and new sets get their PriceChanged flag from direct price
// inequality; newly appearing coins are unchanged.
func (s *Store) ApplySnapshot(coins []coingecko.Coin) {
	s.mu.Lock()

	previous := make(map[string]float64, len(s.coins))
	for _, asset := range s.coins {
		previous[asset.ID] = asset.CurrentPrice
	}

	next := make([]Asset, 0, len(coins))
	for _, coin := range coins {
		asset := Asset{Coin: coin}
		if oldPrice, ok := previous[coin.ID]; ok {
			asset.PriceChanged = oldPrice != coin.CurrentPrice
		}
		next = append(next, asset)
	}
	s.coins = next

	s.mu.Unlock()
	s.emit()
}

// SetSearchTerm updates the free-text filter. Idempotent: an unchanged
// value skips re-derivation and notification.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	if s.searchTerm == term {
		s.mu.Unlock()
		return
	}
	s.searchTerm = term
	s.mu.Unlock()
	s.emit()
}

// SetSortKey updates the active sort key
func (s *Store) SetSortKey(key SortKey) {
	s.mu.Lock()
	if s.sortKey == key {
		s.mu.Unlock()
		return
	}
	s.sortKey = key
	s.mu.Unlock()
	s.emit()
}

// SetFavoritesOnly toggles the favorites-only filter
func (s *Store) SetFavoritesOnly(enabled bool) {
	s.mu.Lock()
	if s.favoritesOnly == enabled {
		s.mu.Unlock()
		return
	}
	s.favoritesOnly = enabled
	s.mu.Unlock()
	s.emit()
}

// ToggleFavorite flips membership of id in the favorites set, persists the
// new list immediately and reports whether the id is now a favorite.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()

	var nowFavorite bool
	if _, ok := s.favSet[id]; ok {
		delete(s.favSet, id)
		for i, fav := range s.favOrder {
			if fav == id {
				s.favOrder = append(s.favOrder[:i], s.favOrder[i+1:]...)
				break
			}
		}
	} else {
		s.favSet[id] = struct{}{}
		s.favOrder = append(s.favOrder, id)
		nowFavorite = true
	}

	var err error
	if s.prefs != nil {
		err = s.prefs.SetFavorites(s.favOrder)
	}

	s.mu.Unlock()
	s.emit()
	return nowFavorite, err
}

// IsFavorite reports membership of id in the favorites set
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favSet[id]
	return ok
}

// Favorites returns the favorite ids in insertion order
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.favOrder))
	copy(out, s.favOrder)
	return out
}

// FavoritesOnly reports the favorites-only filter state
func (s *Store) FavoritesOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favoritesOnly
}

// SearchTerm returns the active free-text filter
func (s *Store) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// ActiveSortKey returns the active sort key
func (s *Store) ActiveSortKey() SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortKey
}

// Coin looks up a single asset of the current snapshot by id
func (s *Store) Coin(id string) (Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, asset := range s.coins {
		if asset.ID == id {
			return asset, true
		}
	}
	return Asset{}, false
}

// Size returns the number of coins in the current snapshot
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.coins)
}

// Projection derives the filtered, sorted view: favorites-only membership
// filter, then case-insensitive substring match on name or symbol, then a
// stable sort by the active key. Equal keys keep arrival order.
func (s *Store) Projection() []Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(s.searchTerm)

	filtered := make([]Asset, 0, len(s.coins))
	for _, asset := range s.coins {
		if s.favoritesOnly {
			if _, ok := s.favSet[asset.ID]; !ok {
				continue
			}
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(asset.Name), term) &&
			!strings.Contains(strings.ToLower(asset.Symbol), term) {
			continue
		}
		filtered = append(filtered, asset)
	}

	s.sortAssets(filtered)
	return filtered
}

func (s *Store) emit() {
	if s.events != nil {
		s.events.Emit()
	}
}
