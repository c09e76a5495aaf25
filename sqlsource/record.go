package sqlsource

// Record represents a database record the source can resolve.
// Consumers implement this interface.
// Columns() and Pointers() MUST always be in the same column order.
type Record interface {
	TableName() string
	Columns() []string
	Pointers() []any
	// Key returns the primary-key value, used to join relations.
	// The value must be comparable.
	Key() any
}
