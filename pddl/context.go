// Package pddl implements the fourth and fifth pipeline stages: emitting
// a PDDL domain from a normalized, structurally analyzed BPMN graph, and
// emitting the problem files that pair with it.
package pddl

import "strconv"

// Context threads the state a single translation's encoding pass must
// share across every action it names, rather than a process-wide global
// — the action-name-uniquification counter here, used by the
// single-start, gateway-activation, gateway, task and goal emission sites
// so that two such actions deriving the same base name anywhere in the
// domain collide onto `_2`, `_3`, ... consistently, not just within one
// node kind. The start_process action and the inclusive diverge, counter
// and converge actions are named without it.
type Context struct {
	usedActionNames map[string]int
}

// NewContext returns an empty per-translation Context.
func NewContext() *Context {
	return &Context{usedActionNames: map[string]int{}}
}

// UniqueActionName returns base the first time it is requested, and
// base_2, base_3, ... on every subsequent request for the same base.
func (c *Context) UniqueActionName(base string) string {
	count := c.usedActionNames[base]
	c.usedActionNames[base] = count + 1
	if count == 0 {
		return base
	}
	return base + "_" + strconv.Itoa(count+1)
}
