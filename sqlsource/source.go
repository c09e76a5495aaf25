// Package sqlsource implements the schemafetch object source over
// database/sql. A Source holds a registry of record factories and named
// relations; its requests compile to single SELECT statements and load
// prefetched relations in batches, one query per relation level.
package sqlsource

import (
	"context"

	"github.com/pkg/errors"
)

// Source represents a registry-backed object source.
// Consumers instantiate it via New().
type Source struct {
	exec   Executor
	tables map[string]*table
	logFn  func(messages ...any)
}

type table struct {
	factory   func() Record
	relations map[string]Relation
}

// New creates a new Source instance.
func New(exec Executor) *Source {
	return &Source{
		exec:   exec,
		tables: map[string]*table{},
	}
}

// SetLog sets the log function for warnings and informational messages.
// If not set, messages are silently discarded.
func (s *Source) SetLog(fn func(messages ...any)) {
	s.logFn = fn
}

func (s *Source) log(messages ...any) {
	if s.logFn != nil {
		s.logFn(messages...)
	}
}

// Register adds a record type and its named relations to the registry.
// Registering a table twice replaces the previous entry.
func (s *Source) Register(factory func() Record, relations ...Relation) error {
	rec := factory()
	name := rec.TableName()
	if name == "" {
		return ErrEmptyTable
	}
	if _, ok := s.tables[name]; ok {
		s.log("Warning: table", name, "registered twice; replacing previous entry")
	}
	t := &table{factory: factory, relations: map[string]Relation{}}
	for _, rel := range relations {
		t.relations[rel.Name] = rel
	}
	s.tables[name] = t
	return nil
}

// Select creates a deferred fetch request for the record type built by
// factory.
func (s *Source) Select(factory func() Record) *Request {
	return &Request{src: s, factory: factory}
}

// Instance wraps an already resolved record for use with
// Adapter.FromInstance.
func (s *Source) Instance(rec Record) *Instance {
	return &Instance{src: s, rec: rec}
}

// Instance adapts a resolved record to the schemafetch Instance interface.
type Instance struct {
	src *Source
	rec Record
}

// FetchRelated populates the named relation paths on the wrapped record.
func (i *Instance) FetchRelated(ctx context.Context, relations ...string) error {
	return i.src.fetchRelated(ctx, i.rec.TableName(), []Record{i.rec}, relations)
}

// Record returns the wrapped record.
func (i *Instance) Record() any {
	return i.rec
}

func (s *Source) lookup(tableName string) (*table, error) {
	t, ok := s.tables[tableName]
	if !ok {
		return nil, errors.Wrap(ErrUnregistered, tableName)
	}
	return t, nil
}
