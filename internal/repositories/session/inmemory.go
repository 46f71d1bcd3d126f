package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
	// TTL for idle sessions (optional, defaults to DefaultTTL)
	TTL time.Duration
}

type entry struct {
	values    Values
	expiresAt time.Time
}

// inMemoryRepository keeps sessions in process memory. Expired sessions
// are dropped when touched, and all of them are swept by a write at most
// once per TTL.
type inMemoryRepository struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	clock     clock.Clock
	ttl       time.Duration
	nextSweep time.Time
}

// NewInMemory creates a session repository for single-process runs and tests
func NewInMemory(cfg *InMemoryConfig) Repository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &inMemoryRepository{
		sessions:  make(map[string]*entry),
		clock:     c,
		ttl:       ttl,
		nextSweep: c.Now().Add(ttl),
	}
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := validateKeys(input.Keys); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	values := make(Values)
	e := r.live(input.SessionID)
	if e == nil {
		return &GetOutput{Values: values}, nil
	}

	if len(input.Keys) == 0 {
		for k, v := range e.values {
			values[k] = v
		}
		return &GetOutput{Values: values}, nil
	}
	for _, k := range input.Keys {
		if v, ok := e.values[k]; ok {
			values[k] = v
		}
	}

	return &GetOutput{Values: values}, nil
}

func (r *inMemoryRepository) Set(_ context.Context, input SetInput) (*SetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := validateValues(input.Values); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()

	e := r.live(input.SessionID)
	if e == nil {
		e = &entry{values: make(Values)}
		r.sessions[input.SessionID] = e
	}
	for k, v := range input.Values {
		e.values[k] = v
	}
	e.expiresAt = r.clock.Now().Add(r.ttl)

	return &SetOutput{ExpiresAt: e.expiresAt}, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if len(input.Keys) == 0 {
		return nil, errors.InvalidArgument(errNoKeys)
	}
	if err := validateKeys(input.Keys); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.live(input.SessionID)
	if e == nil {
		return &DeleteOutput{}, nil
	}

	deleted := 0
	for _, k := range input.Keys {
		if _, ok := e.values[k]; ok {
			delete(e.values, k)
			deleted++
		}
	}
	e.expiresAt = r.clock.Now().Add(r.ttl)

	return &DeleteOutput{Deleted: deleted}, nil
}

func (r *inMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, input.SessionID)

	return &ClearOutput{}, nil
}

// live returns the session entry, evicting it when expired. Caller holds mu.
func (r *inMemoryRepository) live(sessionID string) *entry {
	e, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	if !r.clock.Now().Before(e.expiresAt) {
		delete(r.sessions, sessionID)
		return nil
	}
	return e
}

// sweep evicts every expired session once the sweep deadline has passed.
// Caller holds mu.
func (r *inMemoryRepository) sweep() {
	now := r.clock.Now()
	if now.Before(r.nextSweep) {
		return
	}
	for id, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, id)
		}
	}
	r.nextSweep = now.Add(r.ttl)
}
