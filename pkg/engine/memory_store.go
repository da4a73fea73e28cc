package engine

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

type storedEntry struct {
	entry   *Entry
	seq     uint64
	claimed bool
}

// MemoryStore is an in-process Store for tests, demos and single-node use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*storedEntry
	tasks   map[*task.Task]uuid.UUID
	dead    []DeadLetter
	seq     uint64
	clock   func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithStoreClock sets the clock used to stamp dead letters.
func WithStoreClock(clock func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if clock != nil {
			ms.clock = clock
		}
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		entries: make(map[uuid.UUID]*storedEntry),
		tasks:   make(map[*task.Task]uuid.UUID),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(ms)
	}
	return ms
}

// Push implements Store. A task can be stored only once at a time.
func (ms *MemoryStore) Push(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.Task == nil {
		return ErrTaskNil
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.entries[entry.ID]; exists {
		return fmt.Errorf("%w: id %s", ErrEntryExists, entry.ID)
	}
	if id, exists := ms.tasks[entry.Task]; exists {
		return fmt.Errorf("%w: task already stored as %s", ErrEntryExists, id)
	}

	ms.seq++
	ms.entries[entry.ID] = &storedEntry{entry: entry, seq: ms.seq}
	ms.tasks[entry.Task] = entry.ID

	return nil
}

// Claim implements Store.
//
// Among due entries the highest priority wins, then the earliest next instant,
// then submission order.
func (ms *MemoryStore) Claim(ctx context.Context, now int64) (*Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	var best *storedEntry
	for _, se := range ms.entries {
		if se.claimed || !se.entry.Task.Plan().Due(now) {
			continue
		}
		if best == nil || claimsBefore(se, best) {
			best = se
		}
	}

	if best == nil {
		return nil, ErrNoEntryDue
	}

	best.claimed = true
	return best.entry, nil
}

func claimsBefore(a, b *storedEntry) bool {
	pa, pb := a.entry.Task.Plan(), b.entry.Task.Plan()
	if pa.Priority() != pb.Priority() {
		return pa.Priority() > pb.Priority()
	}
	if pa.Next() != pb.Next() {
		return pa.Next() < pb.Next()
	}
	return a.seq < b.seq
}

// Release implements Store. The entry keeps its place in submission order.
func (ms *MemoryStore) Release(ctx context.Context, id uuid.UUID) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	se, err := ms.claimedLocked(id)
	if err != nil {
		return err
	}

	se.claimed = false
	return nil
}

// Complete implements Store.
func (ms *MemoryStore) Complete(ctx context.Context, id uuid.UUID) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	se, err := ms.claimedLocked(id)
	if err != nil {
		return err
	}

	ms.removeLocked(se)
	return nil
}

// Reject implements Store.
func (ms *MemoryStore) Reject(ctx context.Context, id uuid.UUID, result task.Result, reason string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	se, err := ms.claimedLocked(id)
	if err != nil {
		return err
	}

	ms.removeLocked(se)
	ms.dead = append(ms.dead, DeadLetter{
		Entry:    *se.entry,
		Result:   result,
		Reason:   reason,
		FailedAt: ms.clock(),
	})
	return nil
}

// Len implements Store.
func (ms *MemoryStore) Len(ctx context.Context) (int, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.entries), nil
}

// Get returns a copy of a pending entry. Claimed entries are owned by the
// dispatcher and are not reported.
func (ms *MemoryStore) Get(id uuid.UUID) (Entry, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	se, ok := ms.entries[id]
	if !ok || se.claimed {
		return Entry{}, false
	}
	return *se.entry, true
}

// DeadLetters returns the rejected entries in rejection order.
func (ms *MemoryStore) DeadLetters() []DeadLetter {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.dead)
}

func (ms *MemoryStore) claimedLocked(id uuid.UUID) (*storedEntry, error) {
	se, ok := ms.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	if !se.claimed {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotClaimed, id)
	}
	return se, nil
}

func (ms *MemoryStore) removeLocked(se *storedEntry) {
	delete(ms.entries, se.entry.ID)
	delete(ms.tasks, se.entry.Task)
}
