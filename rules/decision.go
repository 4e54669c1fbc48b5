package rules

import "github.com/threekingdoms/engine/model"

// Decision is the allowed/denied-with-reason result every yes/no rule
// query returns.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns an allowed Decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny returns a denied Decision carrying reason.
func Deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// CardSet is the enumerated-set result multi-value queries return:
// legal responder cards, including virtual ones produced by live
// CardConversion skills.
type CardSet struct {
	Physical []model.CardID
	Virtual  []model.Virtual
}

// HasAny reports whether this set offers at least one legal card,
// physical or virtual.
func (s CardSet) HasAny() bool {
	return len(s.Physical) > 0 || len(s.Virtual) > 0
}
