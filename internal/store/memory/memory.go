// Package memory implements store.Store over an in-process map,
// grounded on avangerus-kalita/internal/api/storage.go's Storage/Record
// shape: a sync.RWMutex-guarded map of model name to id to record,
// with ulid-generated ids.
package memory

import (
	"context"
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/contourhq/contour/internal/store"
)

// Store is a concurrency-safe in-memory store.Store. The zero value is
// not usable; construct with New.
type Store struct {
	mu      sync.RWMutex
	data    map[string]map[string]store.Record
	entropy io.Reader
}

// New returns an empty Store.
func New() *Store {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Store{
		data:    make(map[string]map[string]store.Record),
		entropy: ulid.Monotonic(src, 0),
	}
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) Create(ctx context.Context, model string, values map[string]any) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := values["id"].(string)
	if id == "" {
		id = s.newID()
	}
	rec := store.Record{ID: id, Values: cloneValues(values)}
	rec.Values["id"] = id

	if s.data[model] == nil {
		s.data[model] = make(map[string]store.Record)
	}
	s.data[model][id] = rec
	return rec, nil
}

func (s *Store) Get(ctx context.Context, model, id string) (store.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[model][id]
	return rec, ok, nil
}

func (s *Store) List(ctx context.Context, model string, opts store.ListOptions) (store.ListResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []store.Record
	for _, rec := range s.data[model] {
		if opts.Filter == nil || opts.Filter(rec) {
			all = append(all, rec)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if opts.OrderBy != "" {
		sort.SliceStable(all, func(i, j int) bool {
			less := compareValue(all[i].Values[opts.OrderBy], all[j].Values[opts.OrderBy])
			if opts.Desc {
				return less > 0
			}
			return less < 0
		})
	}

	total := len(all)
	start := opts.Skip
	if start > len(all) {
		start = len(all)
	}
	page := all[start:]
	if opts.First > 0 && opts.First < len(page) {
		page = page[:opts.First]
	}

	return store.ListResult{Records: page, Total: total}, nil
}

func (s *Store) Update(ctx context.Context, model, id string, values map[string]any) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data[model][id]
	if !ok {
		return store.Record{}, &store.ErrNotFound{Model: model, ID: id}
	}
	for k, v := range values {
		rec.Values[k] = v
	}
	s.data[model][id] = rec
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, model, id string) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data[model][id]
	if !ok {
		return store.Record{}, &store.ErrNotFound{Model: model, ID: id}
	}
	delete(s.data[model], id)
	return rec, nil
}

func cloneValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	return out
}

// compareValue orders two field values for OrderBy. Only the types
// the transpiler's scalar kinds can produce are handled; anything else
// compares equal (stable sort preserves insertion order).
func compareValue(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case int64:
		bv, _ := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case time.Time:
		bv, _ := b.(time.Time)
		if av.Before(bv) {
			return -1
		}
		if av.After(bv) {
			return 1
		}
		return 0
	}
	return 0
}
