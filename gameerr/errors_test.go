package gameerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/gameerr"
)

func TestConstructors_SetExpectedCode(t *testing.T) {
	cases := []struct {
		name string
		err  *gameerr.Error
		code gameerr.Code
	}{
		{"InvalidTarget", gameerr.InvalidTarget("target is dead"), gameerr.CodeInvalidTarget},
		{"InvalidState", gameerr.InvalidState("not in play phase"), gameerr.CodeInvalidState},
		{"InsufficientCards", gameerr.InsufficientCards("draw pile empty"), gameerr.CodeInsufficientCards},
		{"UsageLimitExceeded", gameerr.UsageLimitExceeded("slash this turn"), gameerr.CodeUsageLimitExceeded},
		{"DuplicateKey", gameerr.DuplicateKey("skill:horsemanship"), gameerr.CodeDuplicateKey},
		{"AlreadyUsed", gameerr.AlreadyUsed("jijiu"), gameerr.CodeAlreadyUsed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.True(t, gameerr.Is(tc.err, tc.code))
		})
	}
}

func TestWithMeta_AttachesDiagnosticFields(t *testing.T) {
	err := gameerr.InvalidTarget("out of range", gameerr.WithMeta("card_id", "c-1"), gameerr.WithMeta("seat", 2))
	assert.Equal(t, "c-1", err.Meta["card_id"])
	assert.Equal(t, 2, err.Meta["seat"])
}

func TestAddToCallStack_AppendsFrames(t *testing.T) {
	err := gameerr.InvalidState("wrong phase", gameerr.AddToCallStack("slash"), gameerr.AddToCallStack("use_card"))
	assert.Equal(t, []string{"slash", "use_card"}, err.CallStack)
}

func TestWrap_PreservesCodeMetaAndCallStack(t *testing.T) {
	inner := gameerr.InvalidTarget("target is dead", gameerr.WithMeta("card_id", "c-1"), gameerr.AddToCallStack("slash"))
	outer := gameerr.Wrap(inner, "resolving slash", gameerr.AddToCallStack("use_card"))

	assert.Equal(t, gameerr.CodeInvalidTarget, outer.Code)
	assert.Equal(t, "c-1", outer.Meta["card_id"])
	assert.Equal(t, []string{"slash", "use_card"}, outer.CallStack)
	assert.ErrorIs(t, outer, inner)
}

func TestWrap_ForeignErrorBecomesUnknown(t *testing.T) {
	outer := gameerr.Wrap(errors.New("boom"), "resolving slash")
	assert.Equal(t, gameerr.CodeUnknown, outer.Code)
}

func TestWrap_NilErrorYieldsInternal(t *testing.T) {
	outer := gameerr.Wrap(nil, "should not happen")
	assert.Equal(t, gameerr.CodeInternal, outer.Code)
}

func TestGetCode_FallsBackForNonGameerr(t *testing.T) {
	assert.Equal(t, gameerr.CodeUnknown, gameerr.GetCode(errors.New("boom")))
}

func TestError_FormatsCauseWhenPresent(t *testing.T) {
	outer := gameerr.Wrap(errors.New("boom"), "resolving slash")
	require.Contains(t, outer.Error(), "boom")
	require.Contains(t, outer.Error(), "resolving slash")
}
