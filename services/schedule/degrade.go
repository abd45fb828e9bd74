package schedule

// Sourced carries a value together with its provenance: fresh from the
// upstream source, or a permissive fallback substituted after an
// upstream failure. Keeps "healthy" and "degraded-but-proceeding"
// distinguishable instead of swallowed in an error branch.
type Sourced[T any] struct {
	Value  T
	Reason string // empty when fresh
}

// Fresh wraps a value read from a healthy upstream.
func Fresh[T any](v T) Sourced[T] {
	return Sourced[T]{Value: v}
}

// Degraded wraps a fallback value substituted because of an upstream
// failure described by reason.
func Degraded[T any](v T, reason string) Sourced[T] {
	return Sourced[T]{Value: v, Reason: reason}
}

// IsDegraded reports whether the value is a fallback.
func (s Sourced[T]) IsDegraded() bool {
	return s.Reason != ""
}
