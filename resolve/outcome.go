package resolve

import "github.com/threekingdoms/engine/gameerr"

// Outcome is what a Resolver's Resolve call returns: success, or a
// failure carrying the error code/message/details the engine bubbles up
// as the stack unwinds.
type Outcome struct {
	Ok         bool
	Code       gameerr.Code
	MessageKey string
	Details    map[string]any
}

// Success returns a successful Outcome.
func Success() Outcome { return Outcome{Ok: true} }

// Failure returns a failed Outcome carrying code, messageKey, and
// details.
func Failure(code gameerr.Code, messageKey string, details map[string]any) Outcome {
	return Outcome{Code: code, MessageKey: messageKey, Details: details}
}

// AsError converts a failed Outcome into a *gameerr.Error, or nil if Ok.
func (o Outcome) AsError() error {
	if o.Ok {
		return nil
	}
	opts := make([]gameerr.Option, 0, len(o.Details))
	for k, v := range o.Details {
		opts = append(opts, gameerr.WithMeta(k, v))
	}
	return gameerr.New(o.Code, o.MessageKey, opts...)
}

// FromError builds a failed Outcome from err, extracting its gameerr.Code
// if it carries one (CodeUnknown otherwise). Resolvers use this to
// convert an error returned by a collaborator (move.Service,
// judge.Service, a Responder) into the Outcome their Resolve must
// return.
func FromError(err error) Outcome {
	return Failure(gameerr.GetCode(err), err.Error(), nil)
}
