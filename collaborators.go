package schemafetch

import "context"

// Instance represents an already resolved object-source record that can
// populate named relations in place.
// Consumers implement this interface (or use the sqlsource binding).
type Instance interface {
	FetchRelated(ctx context.Context, relations ...string) error
}

// Request represents a deferred fetch against the object source.
// A Request is single use: Prefetch may be called any number of times
// before the terminal Resolve or ResolveOne call, which executes the
// underlying fetch exactly once.
type Request interface {
	// Prefetch records relation paths to populate during execution.
	// Nested paths use the "__" delimiter, e.g. "items__product".
	Prefetch(relations ...string) Request

	// Resolve executes the fetch and streams every resulting record,
	// in source order, to each.
	Resolve(ctx context.Context, each func(record any)) error

	// ResolveOne executes the fetch expecting exactly one record.
	// Zero or multiple matches fail with whatever error the object
	// source defines.
	ResolveOne(ctx context.Context) (any, error)
}

// Converter builds a validated schema instance from one resolved record.
// Consumers implement this interface (or use the validate binding).
type Converter[S any] interface {
	FromRecord(ctx context.Context, record any) (S, error)
}

// ListConverter builds a single schema value wrapping an entire result
// list, for schemas whose root value is the list itself.
type ListConverter[S any] interface {
	FromRecords(ctx context.Context, records []any) (S, error)
}
