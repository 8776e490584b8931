package engine

import (
	"context"
	"fmt"

	"studyquest/internal/storage"
)

// Gateway is the persistence contract the engine needs: a string key/value
// store. *storage.Store satisfies it; tests may inject something else.
type Gateway interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var _ Gateway = (*storage.Store)(nil)

// Service owns the in-memory state and is the single mutation entry point.
// Every mutator runs the rollover check, mutates, persists the whole blob,
// then fires the change hook. Single-writer: no locking.
type Service struct {
	store Gateway
	clock Clock
	state *State

	onChange func(*Snapshot)
}

// NewService loads (or initializes) the persisted state, migrates it
// forward, runs the daily rollover if the stored day is stale, and persists
// the normalized result.
func NewService(ctx context.Context, store Gateway, clock Clock) (*Service, error) {
	s := &Service{store: store, clock: clock}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// OnChange registers a hook fired after every successful mutation with a
// fresh render snapshot. The view layer subscribes here; the engine never
// calls into rendering directly.
func (s *Service) OnChange(fn func(*Snapshot)) {
	s.onChange = fn
}

func (s *Service) load(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, storage.StateKey)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	now := s.clock.Now()
	var st *State
	if ok {
		// A blob that fails to parse or migrate is treated as no prior
		// state; the blob is fully owned by this process.
		st = decodeState(raw)
	}
	if st == nil {
		st = defaultState(now)
	}

	rollover(st, now)
	st.day(DayKey(now))
	if len(st.History) > HistoryLimit {
		st.History = st.History[:HistoryLimit]
	}

	s.state = st
	return s.persist(ctx)
}

// beginMutation runs the lazy rollover check. A process left open across
// midnight rolls over on its next mutation, not via a timer.
func (s *Service) beginMutation() {
	rollover(s.state, s.clock.Now())
}

func (s *Service) persist(ctx context.Context) error {
	raw, err := encodeState(s.state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.store.Set(ctx, storage.StateKey, raw); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// commit persists and notifies; every mutator ends here on success.
func (s *Service) commit(ctx context.Context) error {
	if err := s.persist(ctx); err != nil {
		return err
	}
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
	return nil
}
