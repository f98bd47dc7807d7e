package extract

import "strings"

// Narrow reduces candidate to the span between its first '{' and its last
// '}', inclusive, dropping prose or markdown fences around the JSON.
// It fails on blank input or when no ordered brace pair exists.
// Narrow(Narrow(s)) == Narrow(s).
func Narrow(candidate string) (string, bool) {
	if strings.TrimSpace(candidate) == "" {
		return "", false
	}
	return braceSpan(candidate)
}
