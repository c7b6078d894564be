package statekit_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/statekit"
)

// Example declares transitions for an order status field, validates a staged
// change, and fires the first eligible transition.
func Example() {
	table, err := statekit.New("status",
		[]string{"na", "in_progress", "dispatched"},
		map[string]statekit.Rule[string, *ticket]{
			"in_progress": {From: []string{"na"}},
			"dispatched":  {From: []string{"in_progress"}},
		},
	)
	if err != nil {
		panic(err)
	}
	policy := statekit.Bind(table, memHost{})

	tk := &ticket{status: "na"}

	// Jumping straight to dispatched is blocked by the rule table.
	tk.set("dispatched")
	fmt.Println(policy.Validate(tk))

	// Fire walks the candidates in order and persists the first eligible one.
	tk = &ticket{status: "na"}
	fired, _ := policy.Fire(context.Background(), tk, []string{"dispatched", "in_progress"}, false)
	fmt.Println(fired, tk.status)

	// Output:
	// validation error: status: invalid transition from na to dispatched
	// true in_progress
}
