package utils

// Ptr returns a pointer to a copy of v, for optional request fields.
//
// Example:
//
//	req.MaxTokens = utils.Ptr(300)
func Ptr[T any](v T) *T {
	return &v
}
