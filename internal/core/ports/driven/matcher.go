package driven

import "github.com/custodia-labs/rollcall/internal/core/domain"

// NameMatcher matches a booking's name against the release feed.
// Matching between two independently formatted sources is brittle, so
// the strategy is pluggable (exact, normalised, fuzzy) without touching
// the reconciler's control flow.
type NameMatcher interface {
	// Match returns the release detail for name, if any.
	Match(name string, details map[string]domain.ReleaseDetail) (domain.ReleaseDetail, bool)
}
