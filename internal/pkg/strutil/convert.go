// Package strutil converts query string values.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning -1 when it is not a number so
// that range validation rejects it.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
