package pddl

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// reservedPDDLAtoms are the connective/keyword tokens that can appear
// wrapped in a lone pair of parentheses ("(and)", the no-op branch of an
// inclusive diverge) without naming a declared predicate.
var reservedPDDLAtoms = map[string]bool{
	"and": true, "or": true, "not": true, "oneof": true,
	"when": true, "forall": true, "exists": true, "imply": true,
}

var nullaryAtomPattern = regexp.MustCompile(`\(([A-Za-z][A-Za-z0-9_]*)\)`)

// referencedPredicates extracts every nullary-atom reference "(name)" from
// domainText, in first-seen order, skipping PDDL connective keywords.
func referencedPredicates(domainText string) []string {
	matches := nullaryAtomPattern.FindAllStringSubmatch(domainText, -1)
	seen := map[string]bool{}
	var out []string
	for _, m := range matches {
		name := m[1]
		if reservedPDDLAtoms[name] || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// assertEveryReferencedPredicateIsDeclared checks Testable Property 1 from
// spec.md §8: every predicate appearing in any action's precondition or
// effect must be declared in :predicates.
func assertEveryReferencedPredicateIsDeclared(t *testing.T, domainText string, predicates *predicateTable) {
	t.Helper()
	for _, name := range referencedPredicates(domainText) {
		assert.Truef(t, predicates.has(name), "predicate %q referenced in domain text but never declared", name)
	}
}
