package resolve

import "context"

// Resolver is one pushable unit of resolution work: a card family's
// steps, or a single skill effect. A Resolver closes over whatever
// parameters it was constructed with (the card, the targets, ...) and
// may expose scratch fields a caller reads back after running it.
//
// Two calling conventions coexist, chosen per call site: a resolver
// that hands off work it does not need the result of (UseCard pushing
// its subtype resolver, Damage pushing Dying once health drops ≤ 0)
// calls Context.Stack.Push and returns; a resolver that needs another
// resolver's outcome before deciding its own next step (Slash reading a
// dodge window's result before deciding whether to push Damage, Dying
// reading each response window in turn) calls Resolve on it directly,
// as an ordinary synchronous method call, and reads the pushee's
// scratch fields afterward. Both paths run the identical Resolve logic;
// only whether the stack or the Go call stack provides the sequencing
// differs.
type Resolver interface {
	// Name identifies this resolver in a bubbled failure's call stack.
	Name() string
	// Resolve executes one step. A failed Outcome aborts the current
	// action: the stack is discarded without running its remaining
	// frames.
	Resolve(ctx context.Context, rc *Context) Outcome
}
