// Package report renders pipeline outcomes as text.
//
// A successful run prints the whole collection once, as indented JSON or as
// YAML. A failed run prints a kind-specific line; read failures add a second
// line with the original cause:
//
//	Read error occurred: Failed to fetch data
//	Original error: Not Found
//
//	Validation error occurred: Validation error for user Bob: Invalid date of birth
//
//	Unexpected error: Unexpected error: fetch failed
package report
