package sqlsource

import "errors"

// ErrNotFound is returned when ResolveOne() finds no matching row.
var ErrNotFound = errors.New("record not found")

// ErrMultipleRecords is returned when ResolveOne() matches more than one row.
var ErrMultipleRecords = errors.New("multiple records found")

// ErrUnknownRelation is returned when a prefetch path names a relation
// that was never registered for the record's table.
var ErrUnknownRelation = errors.New("unknown relation")

// ErrResolved is returned when a Request is executed a second time.
var ErrResolved = errors.New("request already resolved")

// ErrEmptyTable is returned when a Record reports an empty table name.
var ErrEmptyTable = errors.New("empty table name")

// ErrUnregistered is returned when a record's table has no registered factory.
var ErrUnregistered = errors.New("table not registered")
