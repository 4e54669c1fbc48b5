package gameevents

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
)

const (
	TypePhaseStart         events.Type = "PhaseStart"
	TypePhaseEnd           events.Type = "PhaseEnd"
	TypeTurnEnd            events.Type = "TurnEnd"
	TypeCardMoved          events.Type = "CardMoved"
	TypeCardsMoved         events.Type = "CardsMoved"
	TypeCardUsed           events.Type = "CardUsed"
	TypeBeforeDamage       events.Type = "BeforeDamage"
	TypeAfterDamage        events.Type = "AfterDamage"
	TypeHpLost             events.Type = "HpLost"
	TypeBeforeRecover      events.Type = "BeforeRecover"
	TypeAfterRecover       events.Type = "AfterRecover"
	TypeJudgementRequested events.Type = "JudgementRequested"
	TypeJudgementCompleted events.Type = "JudgementCompleted"
	TypeDyingEntered       events.Type = "DyingEntered"
	TypeDyingResolved      events.Type = "DyingResolved"
	TypeDrawPhaseReplaced  events.Type = "DrawPhaseReplaced"
)

// PhaseStart fires when Game.CurrentPhase transitions into Phase.
type PhaseStart struct {
	Phase model.Phase
	Turn  int
}

func (PhaseStart) EventType() events.Type { return TypePhaseStart }

// PhaseEnd fires when Phase is about to be left.
type PhaseEnd struct {
	Phase model.Phase
	Turn  int
}

func (PhaseEnd) EventType() events.Type { return TypePhaseEnd }

// TurnEnd fires once per round, at RoundEnd.
type TurnEnd struct {
	Turn int
}

func (TurnEnd) EventType() events.Type { return TypeTurnEnd }

// CardMoved fires once per relocated card.
type CardMoved struct {
	Card   model.CardID
	Src    model.ZoneRole
	SrcSeat model.Seat
	Dst    model.ZoneRole
	DstSeat model.Seat
	Reason model.MoveReason
}

func (CardMoved) EventType() events.Type { return TypeCardMoved }

// CardsMoved batches every card relocated by a single move, so a
// subscriber that cares about "once per batch" (e.g. Xiaoji-style
// skills) can iterate the whole group rather than firing per-card.
type CardsMoved struct {
	Cards   []model.CardID
	Src     model.ZoneRole
	SrcSeat model.Seat
	Dst     model.ZoneRole
	DstSeat model.Seat
	Reason  model.MoveReason
}

func (CardsMoved) EventType() events.Type { return TypeCardsMoved }

// CardUsed fires after UseCard has moved the card out of the user's zone
// and before the subtype-specific resolver runs.
type CardUsed struct {
	User    model.Seat
	Card    model.CardID
	Subtype model.Subtype
	Targets []model.Seat
}

func (CardUsed) EventType() events.Type { return TypeCardUsed }

// BeforeDamage is a mutable accumulator: subscribers add ModifierValues
// to Modifiers before the Damage resolver reads Modifiers.Total() to
// compute the final amount. Composition is commutative addition.
type BeforeDamage struct {
	Source    model.Seat
	Target    model.Seat
	Base      int
	Reason    string
	Modifiers events.Accumulator
}

func (*BeforeDamage) EventType() events.Type { return TypeBeforeDamage }

// AfterDamage fires once the final amount has been applied to Target's
// health.
type AfterDamage struct {
	Source model.Seat
	Target model.Seat
	Amount int
	Reason string
}

func (AfterDamage) EventType() events.Type { return TypeAfterDamage }

// HpLost fires whenever a player's health decreases, independent of
// cause (damage, self-inflicted cost, ...).
type HpLost struct {
	Target model.Seat
	Amount int
}

func (HpLost) EventType() events.Type { return TypeHpLost }

// BeforeRecover is a mutable accumulator analogous to BeforeDamage.
type BeforeRecover struct {
	Target    model.Seat
	Base      int
	Modifiers events.Accumulator
}

func (*BeforeRecover) EventType() events.Type { return TypeBeforeRecover }

// AfterRecover fires once health has been raised, capped at max health.
type AfterRecover struct {
	Target model.Seat
	Amount int
}

func (AfterRecover) EventType() events.Type { return TypeAfterRecover }

// JudgementRequested fires when a Judgement resolver is about to draw.
type JudgementRequested struct {
	Subject model.Seat
}

func (JudgementRequested) EventType() events.Type { return TypeJudgementRequested }

// JudgementCompleted fires once a judgement card has been drawn and the
// rule applied. Skills claiming the card (e.g. a Tiandu-style effect)
// must act on this event; the resolver's cleanup step checks whether the
// card is still in the judgement zone before discarding it — first
// writer wins.
type JudgementCompleted struct {
	Subject model.Seat
	Card    model.CardID
	Passed  bool
	// Trick is the delayed-trick card (e.g. a Lebusishu sitting in the
	// judgement zone) this judgement was drawn for, or model.NoCard for
	// a bare judgement not tied to one.
	Trick model.CardID
}

func (JudgementCompleted) EventType() events.Type { return TypeJudgementCompleted }

// DyingEntered fires when a player's health first reaches <= 0.
type DyingEntered struct {
	Target model.Seat
}

func (DyingEntered) EventType() events.Type { return TypeDyingEntered }

// DyingResolved fires once the Dying resolver concludes, Rescued
// reporting whether a Peach-style effect brought the player back above 0.
type DyingResolved struct {
	Target  model.Seat
	Rescued bool
}

func (DyingResolved) EventType() events.Type { return TypeDyingResolved }

// DrawPhaseReplaced fires when a DrawPhaseReplacement skill substitutes
// for the default draw-two (e.g. a Tuxi-style effect).
type DrawPhaseReplaced struct {
	Seat   model.Seat
	SkillID string
}

func (DrawPhaseReplaced) EventType() events.Type { return TypeDrawPhaseReplaced }
