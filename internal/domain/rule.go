package domain

// PredicateKind enumerates the supported rule predicates.
type PredicateKind string

const (
	PredicateContains    PredicateKind = "contains"
	PredicateNotContains PredicateKind = "not_contains"
	PredicateMatches     PredicateKind = "matches"
	PredicateCapture     PredicateKind = "capture"
)

// Predicate is a single boolean test against a piece of source text.
//
// Capture predicates locate a named group with Pattern and evaluate Nested
// against the group text of the first match, or against "" when nothing matched.
// RequireMatch turns a missing match into an explicit failure.
type Predicate struct {
	Kind         PredicateKind
	Literal      string
	Pattern      string
	Group        string
	Block        string
	RequireMatch bool
	Nested       []Predicate
}

// Rule is a named check evaluated against one source. All predicates must hold.
type Rule struct {
	Name       string
	Source     SourceKind
	Predicates []Predicate
}
