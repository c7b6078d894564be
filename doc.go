// Package statekit adds declarative enum-based state-transition validation
// to persisted entities.
//
// A model declares, per target state, which source states it may be reached
// from and an optional guard predicate that must also pass. StateKit wires
// the decision into the host framework's validation lifecycle so that an
// invalid transition blocks a save. It is host-agnostic by design: the
// library consumes a tiny Host interface (current value, previous value,
// dirty flag, assign-and-persist) and everything else stays in the embedding
// framework.
//
// # Architecture
//
// The package is built around three core concepts:
//
// 1. Table - an immutable rule table built once at model-definition time
// 2. Policy - the table bound to a Host, exposing the generated surface
// 3. Host - the capability interface the embedding framework implements
//
// Evaluation is a single rule lookup plus a guard call: a target state with
// no declared rule is unconstrained and always permitted; a declared rule
// permits the transition iff the previous state satisfies its From set (when
// present) and its guard passes (when present). Guards and source
// constraints are a conjunction, never an override.
//
// # Usage
//
// Declaring transitions for an order status field:
//
//	import "github.com/dmitrymomot/statekit"
//
//	table, err := statekit.New("status",
//		[]string{"na", "in_progress", "dispatched"},
//		map[string]statekit.Rule[string, *Order]{
//			"in_progress": {From: []string{"na"}, If: canProgress},
//			"dispatched":  {From: []string{"in_progress"}},
//		},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	policy := statekit.Bind(table, orderHost)
//
//	// Per-state predicate, pure, never mutates the entity:
//	ok, err := policy.CanTransitionTo(order, "in_progress")
//
//	// Validation hook, registered against changes of the status field:
//	if err := policy.Validate(order); err != nil {
//		// blocked transition or configuration error
//	}
//
//	// Bulk attempt: assign and persist the first eligible target.
//	fired, err := policy.Fire(ctx, order, []string{"na", "in_progress"}, false)
//
// # Guards
//
// Guards come in two typed forms, both resolved without runtime string
// dispatch on field or method names:
//
//   - Rule.If holds a direct Guard[E] func value; caller-supplied args from
//     the predicate call are forwarded to it.
//   - Rule.IfNamed names a guard the entity exposes through the
//     GuardResolver interface; the resolved predicate takes no arguments.
//     A name the entity cannot resolve is a configuration error surfaced as
//     ErrGuardNotResolved, never a silent pass.
//
// # Permissiveness
//
// Rules may reference states absent from the declared state list and may
// omit From entirely (meaning any source). Both are accepted, matching the
// permissive declaration style of mainstream model frameworks, but the
// undeclared-state cases log a warning at build time since they usually
// indicate a typo.
//
// # Host adapters
//
// pkg/pgstore and pkg/redisstore ship reference Host implementations over a
// PostgreSQL state column and a Redis hash field respectively. pkg/rulesfile
// loads rule declarations from YAML documents.
//
// # Error Handling
//
// Configuration and argument errors wrap package sentinels and can be
// checked with errors.Is:
//
//	fired, err := policy.Fire(ctx, order, targets, false)
//	if errors.Is(err, statekit.ErrUnknownState) {
//		// a target outside the declared state list; nothing was mutated
//	}
//
// A blocked transition is not an exception: Validate returns a
// ValidationError carrying the field name and a human-readable message for
// the host's error collector.
package statekit
