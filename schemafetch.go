// Package schemafetch bridges a configured relation list to an object
// source's prefetch capability. Instead of eagerly loading every relation,
// an adapter asks the source to populate exactly the configured relation
// paths, then hands each resulting record to a schema converter.
//
// The object source and the schema converter are injected collaborators;
// their errors propagate unmodified. Adapters hold no state beyond their
// configuration and are safe for concurrent use.
package schemafetch

import "context"

// Adapter converts object-source records into schema instances of type S,
// prefetching a fixed relation list on every fetch.
// Consumers instantiate it via New().
type Adapter[S any] struct {
	converter Converter[S]
	fields    []string
}

// New creates a new Adapter instance.
func New[S any](converter Converter[S], opts ...Option) *Adapter[S] {
	return &Adapter[S]{
		converter: converter,
		fields:    applyOptions(opts).fields,
	}
}

// FetchFields returns a copy of the configured relation paths.
// It returns an empty slice when no fields were configured.
func (a *Adapter[S]) FetchFields() []string {
	out := make([]string, len(a.fields))
	copy(out, a.fields)
	return out
}

// FromInstance populates the configured relations on an already resolved
// record, then converts it.
//
//	order := &Order{}
//	if err := src.Select(orderFactory).Where(sqlsource.Eq("id", 1)).ScanOne(ctx, order); ...
//	schema, err := adapter.FromInstance(ctx, src.Instance(order))
func (a *Adapter[S]) FromInstance(ctx context.Context, inst Instance) (S, error) {
	if err := inst.FetchRelated(ctx, a.fields...); err != nil {
		var zero S
		return zero, err
	}
	return a.converter.FromRecord(ctx, inst)
}

// FromRequest augments req with the configured relations, executes it and
// converts every resulting record independently, preserving the source's
// result ordering. An empty fetch yields an empty slice.
func (a *Adapter[S]) FromRequest(ctx context.Context, req Request) ([]S, error) {
	out := []S{}
	var convErr error
	err := req.Prefetch(a.fields...).Resolve(ctx, func(record any) {
		if convErr != nil {
			return
		}
		var s S
		if s, convErr = a.converter.FromRecord(ctx, record); convErr == nil {
			out = append(out, s)
		}
	})
	if err != nil {
		return nil, err
	}
	if convErr != nil {
		return nil, convErr
	}
	return out, nil
}

// FromRequestOne augments req with the configured relations, executes it
// expecting exactly one record and converts it.
func (a *Adapter[S]) FromRequestOne(ctx context.Context, req Request) (S, error) {
	record, err := req.Prefetch(a.fields...).ResolveOne(ctx)
	if err != nil {
		var zero S
		return zero, err
	}
	return a.converter.FromRecord(ctx, record)
}

// ListAdapter converts an entire result list into one root schema value.
// Consumers instantiate it via NewList().
type ListAdapter[S any] struct {
	converter ListConverter[S]
	fields    []string
}

// NewList creates a new ListAdapter instance.
func NewList[S any](converter ListConverter[S], opts ...Option) *ListAdapter[S] {
	return &ListAdapter[S]{
		converter: converter,
		fields:    applyOptions(opts).fields,
	}
}

// FetchFields returns a copy of the configured relation paths.
// It returns an empty slice when no fields were configured.
func (a *ListAdapter[S]) FetchFields() []string {
	out := make([]string, len(a.fields))
	copy(out, a.fields)
	return out
}

// FromRequest augments req with the configured relations, executes it and
// converts the whole ordered result list into a single schema value.
func (a *ListAdapter[S]) FromRequest(ctx context.Context, req Request) (S, error) {
	records := []any{}
	err := req.Prefetch(a.fields...).Resolve(ctx, func(record any) {
		records = append(records, record)
	})
	if err != nil {
		var zero S
		return zero, err
	}
	return a.converter.FromRecords(ctx, records)
}
