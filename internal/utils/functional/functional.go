// Package functional provides small generic slice helpers.
package functional

// Map transforms each element of in through fn. The result is never nil, so
// an empty input serializes as an empty JSON array rather than null.
func Map[T any, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i := range in {
		out[i] = fn(in[i])
	}
	return out
}

// Any reports whether at least one element of in satisfies pred.
func Any[T any](in []T, pred func(T) bool) bool {
	for i := range in {
		if pred(in[i]) {
			return true
		}
	}
	return false
}
