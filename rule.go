package statekit

// Guard is a predicate that must pass, in addition to any source-state
// constraint, for a transition to be permitted. The variadic args are the
// caller-supplied arguments forwarded from the predicate call; guards that
// don't need them simply ignore them.
type Guard[E any] func(entity E, args ...any) bool

// GuardResolver is the capability interface an entity implements to expose
// named guards. Rules referencing a guard by name (Rule.IfNamed) resolve it
// through this interface at evaluation time; the resolved predicate takes no
// arguments and caller-supplied args are not forwarded to it.
type GuardResolver interface {
	// ResolveGuard returns the guard registered under name, or false if no
	// such guard exists on the entity.
	ResolveGuard(name string) (func() bool, bool)
}

// Rule constrains transitions into a single target state.
//
// A zero Rule permits the transition unconditionally: a nil From means any
// source state is acceptable, and an unset guard always passes. Declaring
// such a rule is still meaningful — it records the target as a known,
// deliberately unconstrained state.
type Rule[S comparable, E any] struct {
	// From lists the source states the transition is permitted from.
	// Nil means any source. A non-nil empty slice is rejected at build time
	// since it would permit nothing.
	From []S

	// If is a direct guard predicate. Caller-supplied args are forwarded.
	If Guard[E]

	// IfNamed references a guard by name, resolved on the entity through
	// GuardResolver at evaluation time. A declared name that cannot be
	// resolved is a configuration error, not a silent pass.
	//
	// At most one of If and IfNamed may be set.
	IfNamed string
}
