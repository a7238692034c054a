package session

import (
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Registry holds independent games keyed by a generated identifier.
// It is safe for concurrent use; each game serializes its own commands.
type Registry struct {
	mu     sync.RWMutex
	games  map[string]*Game
	logger *log.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Registry{
		games:  make(map[string]*Game),
		logger: logger,
	}
}

// Create registers a new game at the standard starting position and
// returns its identifier.
func (r *Registry) Create() (string, *Game) {
	return r.add(NewGame())
}

// CreateFromFEN registers a new game from a FEN string.
func (r *Registry) CreateFromFEN(fen string) (string, *Game, error) {
	g, err := NewGameFromFEN(fen)
	if err != nil {
		return "", nil, err
	}
	id, g := r.add(g)
	return id, g, nil
}

func (r *Registry) add(g *Game) (string, *Game) {
	id := uuid.NewString()

	r.mu.Lock()
	r.games[id] = g
	n := len(r.games)
	r.mu.Unlock()

	r.logger.Printf("game %s created (%d active)", id, n)
	return id, g
}

// Get returns the game registered under id.
func (r *Registry) Get(id string) (*Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("game %q: %w", id, errors.ErrUnknownGame)
	}
	return g, nil
}

// Delete removes the game registered under id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	_, ok := r.games[id]
	delete(r.games, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("game %q: %w", id, errors.ErrUnknownGame)
	}
	r.logger.Printf("game %s deleted", id)
	return nil
}

// Len returns the number of registered games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}
