// Package access decides which record scope an authenticated identity may
// request. Elevated identities (teachers) may read across all users; everyone
// else is confined to their own records.
//
// The gate is an application-level authorization hint. Data isolation must
// additionally be enforced at the persistence layer: the store constrains
// own-scope queries by author id regardless of what the gate resolved.
package access

// Scope is the query boundary of a record fetch.
type Scope string

const (
	// ScopeOwn limits a fetch to the caller's records.
	ScopeOwn Scope = "own"

	// ScopeAll spans every user's records. Available to elevated
	// identities only.
	ScopeAll Scope = "all"
)

// Fetch caps per scope. Ordering happens client side after fetch, so the cap
// bounds the result size without guaranteeing the records are the most recent.
const (
	OwnRecordsLimit = 100
	AllRecordsLimit = 200
)

// Gate maps identity emails to the elevated role via allow-list membership.
// The allow-list is injected at construction and read-only afterwards, so a
// Gate is safe for concurrent use.
type Gate struct {
	elevated map[string]struct{}
}

// NewGate builds a Gate from the configured allow-list. Comparison is
// case-sensitive exactly as configured; empty entries are ignored.
func NewGate(allowList []string) *Gate {
	elevated := make(map[string]struct{}, len(allowList))
	for _, email := range allowList {
		if email != "" {
			elevated[email] = struct{}{}
		}
	}
	return &Gate{elevated: elevated}
}

// IsElevated reports whether the identity with the given email holds the
// elevated role.
func (g *Gate) IsElevated(email string) bool {
	_, ok := g.elevated[email]
	return ok
}

// Resolve returns the effective scope for a request: the requested scope if
// the identity is entitled to it, otherwise [ScopeOwn]. Unknown requested
// scopes resolve to [ScopeOwn].
func (g *Gate) Resolve(requested Scope, email string) Scope {
	if requested == ScopeAll && g.IsElevated(email) {
		return ScopeAll
	}
	return ScopeOwn
}

// Limit returns the fetch cap of a scope.
func Limit(scope Scope) int {
	if scope == ScopeAll {
		return AllRecordsLimit
	}
	return OwnRecordsLimit
}
