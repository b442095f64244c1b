// Package matchers provides name-matching strategies for reconciling
// roster departures against the release feed.
//
// The two sources format names independently, so matching accuracy is
// a moving target. Strategies implement driven.NameMatcher and can be
// chained from strictest to loosest without touching the reconciler.
package matchers

import (
	"strings"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
)

// Ensure strategies implement the interface.
var (
	_ driven.NameMatcher = (*Exact)(nil)
	_ driven.NameMatcher = (*Normalised)(nil)
	_ driven.NameMatcher = (Chain)(nil)
)

// Exact matches by exact cleaned-name equality. This is the historical
// behaviour: formatting drift between the sources fails to match.
type Exact struct{}

// NewExact creates an exact matcher.
func NewExact() *Exact {
	return &Exact{}
}

// Match looks the cleaned name up directly.
func (m *Exact) Match(name string, details map[string]domain.ReleaseDetail) (domain.ReleaseDetail, bool) {
	d, ok := details[domain.CleanName(name)]
	return d, ok
}

// Normalised matches case-insensitively with punctuation stripped,
// tolerating the most common drift between the two feeds.
type Normalised struct{}

// NewNormalised creates a normalised matcher.
func NewNormalised() *Normalised {
	return &Normalised{}
}

// Match compares names after case folding and punctuation removal.
func (m *Normalised) Match(name string, details map[string]domain.ReleaseDetail) (domain.ReleaseDetail, bool) {
	want := normalise(name)
	if want == "" {
		return domain.ReleaseDetail{}, false
	}
	for candidate, d := range details {
		if normalise(candidate) == want {
			return d, true
		}
	}
	return domain.ReleaseDetail{}, false
}

// normalise lowercases the name and strips punctuation, keeping only
// letter and digit runs separated by single spaces.
func normalise(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Chain tries each strategy in order and returns the first match.
type Chain []driven.NameMatcher

// NewChain builds a chain from strictest to loosest.
func NewChain(strategies ...driven.NameMatcher) Chain {
	return Chain(strategies)
}

// Match delegates to each strategy in order.
func (c Chain) Match(name string, details map[string]domain.ReleaseDetail) (domain.ReleaseDetail, bool) {
	for _, m := range c {
		if d, ok := m.Match(name, details); ok {
			return d, true
		}
	}
	return domain.ReleaseDetail{}, false
}

// Default is the production strategy: exact first, then normalised.
func Default() driven.NameMatcher {
	return NewChain(NewExact(), NewNormalised())
}
