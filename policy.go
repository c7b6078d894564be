package statekit

import (
	"context"
	"errors"
	"fmt"
)

// Predicate checks whether an entity may transition into one fixed target
// state. Predicates are pure: they never mutate the entity or attempt the
// transition.
type Predicate[E any] func(entity E, args ...any) (bool, error)

// Policy is a rule table bound to a host. It exposes the generated surface a
// model gains from declaring transitions: per-state predicates, a bulk check
// against the pending value, the validation hook, and the bulk fire
// operation.
//
// A Policy is immutable after Bind and safe for concurrent use, subject to
// the host's own guarantees.
type Policy[S comparable, E any] struct {
	table *Table[S, E]
	host  Host[S, E]
	preds map[S]Predicate[E]
}

// Bind attaches a rule table to a host, building one predicate closure per
// declared state up front.
func Bind[S comparable, E any](table *Table[S, E], host Host[S, E]) *Policy[S, E] {
	p := &Policy[S, E]{
		table: table,
		host:  host,
		preds: make(map[S]Predicate[E], len(table.order)),
	}
	for _, s := range table.order {
		target := s
		p.preds[target] = func(entity E, args ...any) (bool, error) {
			return p.CanTransitionTo(entity, target, args...)
		}
	}
	return p
}

// Table returns the bound rule table.
func (p *Policy[S, E]) Table() *Table[S, E] { return p.table }

// To returns the predicate generated for target, or false when target is not
// a declared state.
func (p *Policy[S, E]) To(target S) (Predicate[E], bool) {
	pred, ok := p.preds[target]
	return pred, ok
}

// CanTransitionTo reports whether entity may move into target from its
// previous value. args are forwarded to a direct guard on the matched rule.
func (p *Policy[S, E]) CanTransitionTo(entity E, target S, args ...any) (bool, error) {
	prev, hasPrev := p.host.Previous(entity)
	return p.table.Allows(entity, prev, hasPrev, target, args...)
}

// CanTransition checks the entity's pending value: it resolves the target
// from the current field value and evaluates it like CanTransitionTo.
// An entity with no resolvable current value is unconstrained and passes.
func (p *Policy[S, E]) CanTransition(entity E, args ...any) (bool, error) {
	target, ok := p.host.Current(entity)
	if !ok {
		return true, nil
	}
	return p.CanTransitionTo(entity, target, args...)
}

// Validate is the validation hook a host registers against changes of the
// tracked field. It returns nil when the field is unchanged or the pending
// transition is allowed, a ValidationError naming the field when the
// transition is blocked, and a plain error for configuration failures.
// Validate never mutates the entity; staging the new value is the host's job.
func (p *Policy[S, E]) Validate(entity E) error {
	if !p.host.Changed(entity) {
		return nil
	}

	target, ok := p.host.Current(entity)
	if !ok {
		return nil
	}

	prev, hasPrev := p.host.Previous(entity)
	allowed, err := p.table.Allows(entity, prev, hasPrev, target)
	if err != nil {
		return err
	}
	if allowed {
		return nil
	}

	verr := NewValidationError()
	verr.Add(p.table.field, fmt.Sprintf("invalid transition from %s to %v", formatPrev(prev, hasPrev), target))
	return verr
}

// Fire attempts the given targets in order.
//
// Every target must be a declared state; an unknown state rejects the whole
// call with ErrUnknownState before any mutation. With clear=false the first
// target whose predicate passes is assigned and persisted, then iteration
// stops. With clear=true every passing target is assigned in order, each
// assignment overwriting the last, so the entity ends at the final eligible
// target. Returns true iff at least one assignment succeeded; no eligible
// target at all is not an error.
func (p *Policy[S, E]) Fire(ctx context.Context, entity E, targets []S, clear bool) (bool, error) {
	for _, s := range targets {
		if !p.table.Known(s) {
			return false, errors.Join(ErrUnknownState, fmt.Errorf("state %v is not declared for field %s", s, p.table.field))
		}
	}

	fired := false
	for _, s := range targets {
		ok, err := p.CanTransitionTo(entity, s)
		if err != nil {
			return fired, err
		}
		if !ok {
			continue
		}
		if err := p.host.Assign(ctx, entity, s); err != nil {
			return fired, err
		}
		fired = true
		if !clear {
			break
		}
	}

	return fired, nil
}

func formatPrev[S comparable](prev S, hasPrev bool) string {
	if !hasPrev {
		return "<none>"
	}
	return fmt.Sprintf("%v", prev)
}
