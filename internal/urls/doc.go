// Package urls provides centralized constants for the project URLs shown to
// users in help text and error boxes.
//
// Usage:
//
//	import "github.com/muurk/kvpairs/internal/urls"
//
//	fmt.Printf("Report problems at: %s\n", urls.Issues)
package urls
