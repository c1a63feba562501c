package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 converts a stored timestamp column back into a time.Time.
// Timestamps are written with time.RFC3339, so a parse failure means a
// corrupt row; the field name in the error points at the offending column.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s timestamp: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET clauses for the positive filter
// values. Zero means unset, so an offset without a limit still works.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
