package action

import "github.com/threekingdoms/engine/model"

// Filter constrains which seats are legal targets for an action.
type Filter int

const (
	// Any seat (alive) is a legal target.
	Any Filter = iota
	// Enemies excludes the actor's own camp.
	Enemies
	// SelfOrFriends excludes seats outside the actor's own camp.
	SelfOrFriends
	// Custom defers target legality entirely to the card/skill's own
	// resolver and rule-service checks; the descriptor carries no
	// additional constraint beyond min/max count.
	Custom
)

// Candidate is one usable card for an action: a physical card played
// as-is, or a physical card recast as a Virtual by a live conversion
// skill. Exactly one of Virtual being nil or not indicates which.
type Candidate struct {
	Physical model.CardID
	Virtual  *model.Virtual
}

// Descriptor describes one legal action an actor could take: using a
// card (possibly via a conversion), invoking a PhaseLimitedAction skill,
// or a built-in phase transition (EndPlay, Discard).
type Descriptor struct {
	ID              string
	DisplayKey      string
	RequiresTargets bool
	MinTargets      int
	MaxTargets      int
	TargetFilter    Filter
	Candidates      []Candidate
}
