// Package fallback ships the static datasets each portal page renders
// when the campus backend is unreachable or returns an unexpected
// shape. They are fixtures, not configuration, and must stay
// shape-compatible with the view models in internal/domain.
package fallback
