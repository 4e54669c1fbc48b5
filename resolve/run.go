package resolve

import (
	"context"

	"github.com/threekingdoms/engine/gameerr"
)

// Run pushes first onto rc.Stack and drains it to empty. Each popped
// resolver's Resolve is called in turn; a failed Outcome aborts
// immediately — the remaining frames are discarded without running,
// since failure is fatal to the current action, not the game — and Run
// returns the corresponding error with the failing resolver's name
// appended to the call stack.
func Run(ctx context.Context, rc *Context, first Resolver) error {
	rc.Stack.Push(first)
	for {
		r, ok := rc.Stack.pop()
		if !ok {
			return nil
		}
		outcome := r.Resolve(ctx, rc)
		if !outcome.Ok {
			rc.Stack.discard()
			return gameerr.Wrap(outcome.AsError(), r.Name(), gameerr.AddToCallStack(r.Name()))
		}
	}
}
