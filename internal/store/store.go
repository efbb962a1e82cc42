// Package store is the document store every repository writes through.
//
// Records live in named collections and are addressed by a string id.
// Reads are by id, by a single equality predicate, or by full scan.
// Writes are whole-record creates, partial merges, guarded merges and
// atomic counter increments. Nothing here spans more than one record
// except WithinTx.
package store

import (
	"context"
	"time"
)

// Document is any record that knows its own key.
type Document interface {
	DocumentID() string
}

// Transactor runs fn so that every store call made with the ctx it
// receives either commits together or not at all.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the CRUD + equality-query contract.
type Store interface {
	Transactor

	// GenerateID returns a fresh unique key for the collection.
	GenerateID(collection string) string

	// Get loads the record with id into dst. Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, collection, id string, dst any) error

	// Query loads every record whose field equals value into dst, a pointer
	// to a slice, in creation order.
	Query(ctx context.Context, collection, field string, value any, dst any) error

	// List loads every record of the collection into dst in creation order.
	List(ctx context.Context, collection string, dst any) error

	// Create writes a new record. Returns domain.ErrAlreadyExists when the id
	// or a unique column is taken.
	Create(ctx context.Context, collection string, doc Document) error

	// Update merges fields into an existing record.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// CompareAndSwap merges fields only while field still equals expected.
	// Returns domain.ErrInvalidTransition when it does not.
	CompareAndSwap(ctx context.Context, collection, id, field string, expected any, fields map[string]any) error

	// Increment adds each delta to its numeric field in one atomic step.
	// Results are floored at zero.
	Increment(ctx context.Context, collection, id string, deltas map[string]float64) error

	// Delete removes the record. Returns domain.ErrNotFound when absent.
	Delete(ctx context.Context, collection, id string) error
}

// Field names shared by every collection.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const timeLayout = time.RFC3339Nano

var zeroTime = time.Time{}.Format(timeLayout)

var now = func() time.Time {
	return time.Now().UTC()
}
