package statekit

import (
	"errors"
	"fmt"
	"log/slog"
)

// Table is an immutable transition rule table for one tracked field.
// It is built once at model-definition time and is safe for concurrent reads;
// it is never mutated after construction.
type Table[S comparable, E any] struct {
	field  string
	states map[S]struct{}
	order  []S
	rules  map[S]Rule[S, E]
}

// Option configures table construction.
type Option func(*buildOptions)

type buildOptions struct {
	log *slog.Logger
}

// WithLogger sets the logger used for configuration-time warnings.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *buildOptions) {
		o.log = log
	}
}

// New builds an immutable rule table for the tracked field.
//
// states is the full list of values the field may hold; it bounds what Fire
// accepts. rules maps target states to their constraints; a target with no
// rule is unconstrained and always permitted.
//
// Rules may reference states absent from the declared list, and may omit From
// entirely (meaning any source). Both are accepted, but undeclared states
// trigger a warning on the configured logger since they usually indicate a
// typo in the declaration.
func New[S comparable, E any](field string, states []S, rules map[S]Rule[S, E], opts ...Option) (*Table[S, E], error) {
	if field == "" {
		return nil, ErrNoField
	}
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	o := buildOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[S, E]{
		field:  field,
		states: make(map[S]struct{}, len(states)),
		order:  make([]S, 0, len(states)),
		rules:  make(map[S]Rule[S, E], len(rules)),
	}
	for _, s := range states {
		if _, dup := t.states[s]; dup {
			continue
		}
		t.states[s] = struct{}{}
		t.order = append(t.order, s)
	}

	for target, rule := range rules {
		if rule.From != nil && len(rule.From) == 0 {
			return nil, errors.Join(ErrInvalidRule, fmt.Errorf("target %v: from set must not be empty", target))
		}
		if rule.If != nil && rule.IfNamed != "" {
			return nil, errors.Join(ErrInvalidRule, fmt.Errorf("target %v: rule declares both a direct and a named guard", target))
		}
		if _, ok := t.states[target]; !ok {
			o.log.Warn("transition rule targets an undeclared state",
				"field", field, "state", fmt.Sprintf("%v", target))
		}
		for _, src := range rule.From {
			if _, ok := t.states[src]; !ok {
				o.log.Warn("transition rule references an undeclared source state",
					"field", field, "target", fmt.Sprintf("%v", target), "source", fmt.Sprintf("%v", src))
			}
		}
		t.rules[target] = rule
	}

	return t, nil
}

// MustNew is like New but panics on a declaration error, for tables declared
// in package-level variables where a malformed rule is a programming bug.
func MustNew[S comparable, E any](field string, states []S, rules map[S]Rule[S, E], opts ...Option) *Table[S, E] {
	t, err := New(field, states, rules, opts...)
	if err != nil {
		panic(fmt.Sprintf("statekit: failed to build transition table: %v", err))
	}
	return t
}

// Field returns the tracked field name the table was declared for.
func (t *Table[S, E]) Field() string { return t.field }

// States returns the declared states in declaration order.
func (t *Table[S, E]) States() []S {
	out := make([]S, len(t.order))
	copy(out, t.order)
	return out
}

// Known reports whether s is in the declared state list.
func (t *Table[S, E]) Known(s S) bool {
	_, ok := t.states[s]
	return ok
}

// Lookup returns the rule declared for target, if any. A missing rule means
// the target is unconstrained.
func (t *Table[S, E]) Lookup(target S) (Rule[S, E], bool) {
	r, ok := t.rules[target]
	return r, ok
}

// Allows decides whether entity may transition into target from the given
// previous state. hasPrev is false when the entity had no prior value, in
// which case any From constraint fails closed. args are forwarded to a direct
// guard; named guards take no arguments.
//
// An error is returned only for configuration failures (a declared named
// guard the entity cannot resolve); the boolean result is meaningless when
// err is non-nil.
func (t *Table[S, E]) Allows(entity E, prev S, hasPrev bool, target S, args ...any) (bool, error) {
	rule, ok := t.rules[target]
	if !ok {
		return true, nil
	}

	guardOK := true
	switch {
	case rule.If != nil:
		guardOK = rule.If(entity, args...)
	case rule.IfNamed != "":
		resolver, ok := any(entity).(GuardResolver)
		if !ok {
			return false, errors.Join(ErrGuardNotResolved,
				fmt.Errorf("guard %q: entity %T does not implement GuardResolver", rule.IfNamed, entity))
		}
		guard, ok := resolver.ResolveGuard(rule.IfNamed)
		if !ok {
			return false, errors.Join(ErrGuardNotResolved,
				fmt.Errorf("guard %q is not registered on entity %T", rule.IfNamed, entity))
		}
		guardOK = guard()
	}

	sourceOK := true
	if rule.From != nil {
		sourceOK = false
		if hasPrev {
			for _, src := range rule.From {
				if src == prev {
					sourceOK = true
					break
				}
			}
		}
	}

	return sourceOK && guardOK, nil
}
