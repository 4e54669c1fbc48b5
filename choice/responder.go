package choice

import "context"

//go:generate mockgen -destination=mock/mock_responder.go -package=mock github.com/threekingdoms/engine/choice Responder

// Responder is the external I/O boundary a resolver calls through to ask
// a seated player a question and get a synchronous answer — the
// get_player_choice callback. Implementations backed by a network
// connection or a UI are expected to block internally until the human
// responds; the engine itself never does anything but call this method
// and use whatever Result comes back.
type Responder interface {
	// RequestChoice asks req.PlayerSeat the question in req and returns
	// their answer, or an error if the responder itself failed (e.g. a
	// disconnected client) — distinct from the player declining, which is
	// represented by a passing Result, not an error.
	RequestChoice(ctx context.Context, req Request) (Result, error)
}
