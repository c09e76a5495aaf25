package sqlsource

// Condition represents a filter for a query.
// It is a sealed value type constructed via helper functions.
type Condition struct {
	column   string
	operator string
	value    any
	values   []any
	logic    string
}

func (c Condition) Column() string   { return c.column }
func (c Condition) Operator() string { return c.operator }
func (c Condition) Value() any       { return c.value }
func (c Condition) Values() []any    { return c.values }
func (c Condition) Logic() string    { return c.logic }

// Eq creates a condition for checking equality.
func Eq(column string, value any) Condition {
	return Condition{column: column, operator: "=", value: value, logic: "AND"}
}

// Neq creates a condition for checking inequality.
func Neq(column string, value any) Condition {
	return Condition{column: column, operator: "!=", value: value, logic: "AND"}
}

// Gt creates a condition for checking if a value is greater than another.
func Gt(column string, value any) Condition {
	return Condition{column: column, operator: ">", value: value, logic: "AND"}
}

// Gte creates a condition for checking if a value is greater than or equal to another.
func Gte(column string, value any) Condition {
	return Condition{column: column, operator: ">=", value: value, logic: "AND"}
}

// Lt creates a condition for checking if a value is less than another.
func Lt(column string, value any) Condition {
	return Condition{column: column, operator: "<", value: value, logic: "AND"}
}

// Lte creates a condition for checking if a value is less than or equal to another.
func Lte(column string, value any) Condition {
	return Condition{column: column, operator: "<=", value: value, logic: "AND"}
}

// Like creates a condition for checking if a value matches a pattern.
func Like(column string, value any) Condition {
	return Condition{column: column, operator: "LIKE", value: value, logic: "AND"}
}

// In creates a condition for checking membership in a value set.
func In(column string, values ...any) Condition {
	return Condition{column: column, operator: "IN", values: values, logic: "AND"}
}

// Or creates a condition with OR logic.
func Or(c Condition) Condition {
	c.logic = "OR"
	return c
}
