package pddl

// ObjectClass is the typed-object category a predicate belongs to in the
// generated problem files: task, event or gateway. Marker predicates
// (branch-started and at-least-one-branch tokens) are declared but never
// classified into an object.
type ObjectClass string

const (
	ClassTask    ObjectClass = "task"
	ClassEvent   ObjectClass = "event"
	ClassGateway ObjectClass = "gateway"
	// ClassMarker predicates are declared but excluded from the object
	// section, matching spec.md §4.5.
	ClassMarker ObjectClass = ""
)

// predicateTable accumulates the domain's predicate declarations in
// first-declared order, alongside each predicate's object classification.
// Classification is carried forward from the node kind that produced the
// predicate rather than re-derived later by substring-matching the
// sanitized id — see DESIGN.md's resolution of the "overlap heuristic"
// open question.
type predicateTable struct {
	order []string
	seen  map[string]bool
	class map[string]ObjectClass
}

func newPredicateTable() *predicateTable {
	return &predicateTable{seen: map[string]bool{}, class: map[string]ObjectClass{}}
}

// declare registers name with class if not already present, returning
// whether this call newly declared it.
func (t *predicateTable) declare(name string, class ObjectClass) bool {
	if t.seen[name] {
		return false
	}
	t.seen[name] = true
	t.order = append(t.order, name)
	t.class[name] = class
	return true
}

func (t *predicateTable) has(name string) bool {
	return t.seen[name]
}
