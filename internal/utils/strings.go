package utils

import "fmt"

// DefaultMaxStringLength is the preview length used when maxLen is not positive.
const DefaultMaxStringLength = 500

// TruncateString shortens s for log output, appending the original length so
// readers know data was omitted. It cuts on bytes and is not meant for
// user-visible text.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}
