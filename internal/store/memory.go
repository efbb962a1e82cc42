package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/google/uuid"
)

type record = map[string]any

type collection struct {
	docs  map[string]record
	order []string
}

func (c *collection) clone() *collection {
	out := &collection{
		docs:  make(map[string]record, len(c.docs)),
		order: slices.Clone(c.order),
	}
	for id, doc := range c.docs {
		cp := make(record, len(doc))
		for k, v := range doc {
			cp[k] = v
		}
		out.docs[id] = cp
	}
	return out
}

type memoryTxKey struct{}

// MemoryStore keeps records as JSON-shaped maps under one RWMutex.
// Records are normalized through encoding/json so field names match the
// json tags of the models, which are also their column names.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*collection)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(memoryTxKey{}).(*MemoryStore)
	return owner == s
}

// lock takes the write lock unless ctx already belongs to a transaction on s,
// which holds it for the duration of the transaction.
func (s *MemoryStore) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemoryStore) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// emptyCollection stands in for a collection nothing has been written to yet.
// It is never mutated.
var emptyCollection = &collection{docs: map[string]record{}}

// view returns the named collection for reading. It never inserts, so it is
// safe under the read lock.
func (s *MemoryStore) view(name string) *collection {
	if c, ok := s.collections[name]; ok {
		return c
	}
	return emptyCollection
}

// coll returns the named collection, creating it. Callers hold the write lock.
func (s *MemoryStore) coll(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]record)}
		s.collections[name] = c
	}
	return c
}

// WithinTx serializes fn against every other store call and restores the
// previous state if fn fails.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]*collection, len(s.collections))
	for name, c := range s.collections {
		snapshot[name] = c.clone()
	}

	if err := fn(context.WithValue(ctx, memoryTxKey{}, s)); err != nil {
		s.collections = snapshot
		return err
	}
	return nil
}

func (s *MemoryStore) GenerateID(string) string {
	return uuid.NewString()
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string, dst any) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	defer s.rlock(ctx)()

	doc, ok := s.view(collection).docs[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	return decode(doc, dst)
}

func (s *MemoryStore) Query(ctx context.Context, collection, field string, value any, dst any) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	want, err := normalizeValue(value)
	if err != nil {
		return err
	}

	defer s.rlock(ctx)()

	c := s.view(collection)
	matches := make([]record, 0)
	for _, id := range c.order {
		doc := c.docs[id]
		if reflect.DeepEqual(doc[field], want) {
			matches = append(matches, doc)
		}
	}
	return decode(matches, dst)
}

func (s *MemoryStore) List(ctx context.Context, collection string, dst any) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	defer s.rlock(ctx)()

	c := s.view(collection)
	all := make([]record, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.docs[id])
	}
	return decode(all, dst)
}

func (s *MemoryStore) Create(ctx context.Context, collection string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	id := doc.DocumentID()
	if id == "" {
		return fmt.Errorf("%s: empty id: %w", collection, domain.ErrInvalidInput)
	}

	var rec record
	if err := decode(doc, &rec); err != nil {
		return err
	}
	ts := now()
	if created, ok := rec[FieldCreatedAt].(string); !ok || created == "" || created == zeroTime {
		rec[FieldCreatedAt] = ts.Format(timeLayout)
	}
	rec[FieldUpdatedAt] = ts.Format(timeLayout)

	defer s.lock(ctx)()

	c := s.coll(collection)
	if _, exists := c.docs[id]; exists {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrAlreadyExists)
	}
	c.docs[id] = rec
	c.order = append(c.order, id)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	patch, err := normalizeFields(fields)
	if err != nil {
		return err
	}

	defer s.lock(ctx)()

	doc, ok := s.coll(collection).docs[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	merge(doc, patch)
	return nil
}

func (s *MemoryStore) CompareAndSwap(ctx context.Context, collection, id, field string, expected any, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	want, err := normalizeValue(expected)
	if err != nil {
		return err
	}
	patch, err := normalizeFields(fields)
	if err != nil {
		return err
	}

	defer s.lock(ctx)()

	doc, ok := s.coll(collection).docs[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	if !reflect.DeepEqual(doc[field], want) {
		return fmt.Errorf("%s/%s: %s is %v: %w", collection, id, field, doc[field], domain.ErrInvalidTransition)
	}
	merge(doc, patch)
	return nil
}

func (s *MemoryStore) Increment(ctx context.Context, collection, id string, deltas map[string]float64) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	defer s.lock(ctx)()

	doc, ok := s.coll(collection).docs[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	for field, delta := range deltas {
		current, _ := doc[field].(float64)
		next := current + delta
		if next < 0 {
			next = 0
		}
		doc[field] = next
	}
	doc[FieldUpdatedAt] = now().Format(timeLayout)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return wrapContextErr(err)
	}
	defer s.lock(ctx)()

	c := s.coll(collection)
	if _, ok := c.docs[id]; !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return nil
}

func merge(doc, patch record) {
	for k, v := range patch {
		doc[k] = v
	}
	doc[FieldUpdatedAt] = now().Format(timeLayout)
}

// decode copies src into dst through a JSON round trip.
func decode(src, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}
	return nil
}

func normalizeValue(v any) (any, error) {
	var out any
	if err := decode(v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeFields(fields map[string]any) (record, error) {
	out := make(record, len(fields))
	if err := decode(fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}
