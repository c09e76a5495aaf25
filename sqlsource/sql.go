package sqlsource

import "strings"

// buildSelect compiles a SELECT statement with "?" placeholders.
// Conditions keep their declaration order; the first condition's logic
// connector is dropped.
func buildSelect(rec Record, conds []Condition, orderBy []Order, limit, offset int) (string, []any) {
	sb := &strings.Builder{}
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(rec.Columns(), ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(rec.TableName())

	var args []any
	for i, cond := range conds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" ")
			sb.WriteString(cond.Logic())
			sb.WriteString(" ")
		}
		if cond.Operator() == "IN" {
			sb.WriteString(cond.Column())
			sb.WriteString(" IN (")
			sb.WriteString(placeholders(len(cond.Values())))
			sb.WriteString(")")
			args = append(args, cond.Values()...)
			continue
		}
		sb.WriteString(cond.Column())
		sb.WriteString(" ")
		sb.WriteString(cond.Operator())
		sb.WriteString(" ?")
		args = append(args, cond.Value())
	}

	if len(orderBy) > 0 {
		parts := make([]string, len(orderBy))
		for i, o := range orderBy {
			parts[i] = o.Column() + " " + o.Dir()
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(parts, ", "))
	}
	if limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	if offset > 0 {
		sb.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	return sb.String(), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
