// Package rulesfile loads statekit transition rule declarations from YAML
// documents, so models can keep their transition tables in configuration
// instead of code.
//
// # File format
//
//	field: status
//	states: [na, in_progress, dispatched]
//	rules:
//	  in_progress:
//	    from: [na]
//	    if: can_progress
//	  dispatched:
//	    from: [in_progress]
//
// field names the tracked attribute, states lists every value the attribute
// may hold, and rules constrains transitions into each listed target. A
// target absent from rules is unconstrained. An omitted from means any
// source; an explicit empty from is rejected, matching statekit.New.
//
// # Guards
//
// The if key names a guard. Build resolves the name against a caller
// supplied registry of direct guards first; names not present in the
// registry are carried as named guards and resolved on the entity through
// statekit.GuardResolver at evaluation time.
//
// # Usage
//
//	f, err := rulesfile.Load("transitions.yml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	table, err := rulesfile.Build(f, map[string]statekit.Guard[*Order]{
//		"can_progress": func(o *Order, _ ...any) bool { return o.Ready() },
//	})
package rulesfile
