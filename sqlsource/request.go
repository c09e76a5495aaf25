package sqlsource

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vasyalisk/schemafetch"
)

// Request represents a deferred SELECT against one record type.
// It implements the schemafetch Request interface and is single use:
// builder methods may be chained freely, but only one Resolve, ResolveOne
// or ScanOne call executes.
// Consumers hold a *Request reference in variables for incremental building.
type Request struct {
	src      *Source
	factory  func() Record
	conds    []Condition
	orderBy  []Order
	limit    int
	offset   int
	prefetch []string
	resolved bool
}

// Order represents a sort order for a query.
// It is a sealed value type constructed via Request.OrderBy().
type Order struct {
	column string
	dir    string
}

func (o Order) Column() string { return o.column }
func (o Order) Dir() string    { return o.dir }

// Where adds conditions to the request.
func (r *Request) Where(conds ...Condition) *Request {
	r.conds = append(r.conds, conds...)
	return r
}

// OrderBy adds an order clause to the request.
func (r *Request) OrderBy(column, dir string) *Request {
	r.orderBy = append(r.orderBy, Order{column: column, dir: dir})
	return r
}

// Limit sets the limit for the request.
func (r *Request) Limit(limit int) *Request {
	r.limit = limit
	return r
}

// Offset sets the offset for the request.
func (r *Request) Offset(offset int) *Request {
	r.offset = offset
	return r
}

// Prefetch records relation paths to populate during execution.
func (r *Request) Prefetch(relations ...string) schemafetch.Request {
	r.prefetch = append(r.prefetch, relations...)
	return r
}

// Resolve executes the request and streams every resulting record, in
// result order, to each.
func (r *Request) Resolve(ctx context.Context, each func(record any)) error {
	records, err := r.records(ctx)
	if err != nil {
		return err
	}
	for _, rec := range records {
		each(rec)
	}
	return nil
}

// ResolveOne executes the request expecting exactly one record.
func (r *Request) ResolveOne(ctx context.Context) (any, error) {
	r.limit = 2 // enough to detect multiple matches with a single fetch
	records, err := r.records(ctx)
	if err != nil {
		return nil, err
	}
	switch len(records) {
	case 0:
		return nil, errors.Wrap(ErrNotFound, r.factory().TableName())
	case 1:
		return records[0], nil
	default:
		return nil, errors.Wrap(ErrMultipleRecords, r.factory().TableName())
	}
}

// ScanOne executes the request and scans the single matching row into
// rec, without touching relations. The request's factory is ignored.
func (r *Request) ScanOne(ctx context.Context, rec Record) error {
	saved := r.factory
	r.factory = func() Record { return rec }
	defer func() { r.factory = saved }()

	r.limit = 1
	records, err := r.records(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.Wrap(ErrNotFound, rec.TableName())
	}
	return nil
}

func (r *Request) records(ctx context.Context) ([]Record, error) {
	if r.resolved {
		return nil, ErrResolved
	}
	r.resolved = true

	probe := r.factory()
	if probe.TableName() == "" {
		return nil, ErrEmptyTable
	}

	query, args := buildSelect(probe, r.conds, r.orderBy, r.limit, r.offset)
	rows, err := r.src.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "select %s", probe.TableName())
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec := r.factory()
		if err := rows.Scan(rec.Pointers()...); err != nil {
			return nil, errors.Wrapf(err, "scan %s", probe.TableName())
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate %s", probe.TableName())
	}

	if err := r.src.fetchRelated(ctx, probe.TableName(), records, r.prefetch); err != nil {
		return nil, err
	}
	return records, nil
}
