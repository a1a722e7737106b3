package postgres

import (
	"strings"
)

// isInvalidTextRepresentation reports a value the column type cannot parse,
// such as a non-uuid string compared against a uuid column.
func isInvalidTextRepresentation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "22p02") || // PostgreSQL invalid_text_representation error code
		strings.Contains(errMsg, "invalid input syntax")
}
