package resolve

import (
	"context"

	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

// ResponseOutcome is the business-level result of a response window —
// distinct from Outcome, which reports whether the window itself ran
// without a fatal error. Recorded under LastResponseResultKey in the
// resolution context's intermediate results.
type ResponseOutcome string

const (
	ResponseSuccess ResponseOutcome = "ResponseSuccess"
	ResponsePass    ResponseOutcome = "Pass"
)

// LastResponseResultKey is the intermediate-results key ResponseWindow
// writes its outcome under.
const LastResponseResultKey = "LastResponseResult"

// ResponseWindowResolver asks one responder for a single response type
// and, if they pass and their own active skills include a
// ResponseAssistance, falls through to asking each assistant in seat
// order. Callers that need the result before deciding their own next
// step (Slash, Duel, Dying) call Resolve on it directly and read Outcome
// / UsedCard / UsedVirtual back afterward, rather than pushing it.
type ResponseWindowResolver struct {
	Responder model.Seat
	Type      rules.ResponseType

	Outcome     ResponseOutcome
	UsedCard    model.CardID
	UsedVirtual *model.Virtual
}

// Name implements Resolver.
func (r *ResponseWindowResolver) Name() string { return "ResponseWindow" }

// Resolve implements Resolver.
func (r *ResponseWindowResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	legal := rc.Rules.Response.LegalResponses(rc.Game, r.Responder, r.Type)

	if legal.HasAny() {
		success, cardID, virtual, err := r.ask(ctx, rc, r.Responder, legal)
		if err != nil {
			return FromError(err)
		}
		if success {
			r.record(rc, ResponseSuccess, cardID, virtual)
			return Success()
		}
	}

	for _, inst := range rc.Skills.GetActiveSkills(rc.Game, r.Responder) {
		assist, ok := inst.(skill.ResponseAssistance)
		if !ok {
			continue
		}
		for _, assistant := range assist.Assistants(rc.Game, r.Responder) {
			nested := &ResponseWindowResolver{Responder: assistant, Type: r.Type}
			if outcome := nested.Resolve(ctx, rc); !outcome.Ok {
				return outcome
			}
			if nested.Outcome == ResponseSuccess {
				r.record(rc, ResponseSuccess, nested.UsedCard, nested.UsedVirtual)
				return Success()
			}
		}
	}

	r.record(rc, ResponsePass, 0, nil)
	return Success()
}

func (r *ResponseWindowResolver) record(rc *Context, outcome ResponseOutcome, cardID model.CardID, virtual *model.Virtual) {
	r.Outcome = outcome
	r.UsedCard = cardID
	r.UsedVirtual = virtual
	rc.SetIntermediate(LastResponseResultKey, outcome)
}

func (r *ResponseWindowResolver) ask(ctx context.Context, rc *Context, responder model.Seat, legal rules.CardSet) (bool, model.CardID, *model.Virtual, error) {
	allowed := append([]model.CardID(nil), legal.Physical...)
	virtualByPhysical := make(map[model.CardID]model.Virtual, len(legal.Virtual))
	for _, v := range legal.Virtual {
		allowed = append(allowed, v.Physical)
		virtualByPhysical[v.Physical] = v
	}

	result, err := rc.RequestChoice(ctx, choice.Request{
		PlayerSeat:       responder,
		ChoiceType:       choice.SelectCards,
		AllowedCards:     allowed,
		Min:              0,
		Max:              1,
		ResponseWindowID: string(r.Type),
	})
	if err != nil {
		return false, 0, nil, err
	}
	if result.Passed() || len(result.SelectedCardIDs) == 0 {
		return false, 0, nil, nil
	}

	cardID := result.SelectedCardIDs[0]
	if err := r.submit(rc, responder, cardID); err != nil {
		return false, 0, nil, err
	}
	if v, ok := virtualByPhysical[cardID]; ok {
		return true, cardID, &v, nil
	}
	return true, cardID, nil, nil
}

func (r *ResponseWindowResolver) submit(rc *Context, responder model.Seat, cardID model.CardID) error {
	player := rc.Game.PlayerBySeat(responder)
	if player == nil {
		return gameerr.InvalidState("unknown responder seat")
	}
	if !player.Hand.Contains(cardID) {
		return gameerr.InvalidTarget("submitted card not in responder's hand", gameerr.WithMeta("card_id", cardID))
	}
	return rc.Move.DiscardFromHand(player, rc.Game.Discard, []model.CardID{cardID})
}
