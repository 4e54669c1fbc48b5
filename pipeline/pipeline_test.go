package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/pipeline"
)

func TestRun_ThreadsOutputThroughStages(t *testing.T) {
	stages := []pipeline.Named{
		{Name: "double", Stage: func(_ context.Context, v any) (any, error) { return v.(int) * 2, nil }},
		{Name: "add-one", Stage: func(_ context.Context, v any) (any, error) { return v.(int) + 1, nil }},
	}

	out, err := pipeline.Run(context.Background(), 3, stages...)
	require.NoError(t, err)
	assert.Equal(t, 7, out)
}

func TestRun_StopsAtFirstErrorAndNamesTheStage(t *testing.T) {
	stages := []pipeline.Named{
		{Name: "draw", Stage: func(_ context.Context, v any) (any, error) { return v, nil }},
		{Name: "apply-rule", Stage: func(_ context.Context, _ any) (any, error) { return nil, errors.New("boom") }},
		{Name: "publish", Stage: func(_ context.Context, v any) (any, error) {
			t.Fatal("should not run after a prior stage failed")
			return v, nil
		}},
	}

	_, err := pipeline.Run(context.Background(), 1, stages...)
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeUnknown, gameerr.GetCode(err))
	var gerr *gameerr.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, []string{"apply-rule"}, gerr.CallStack)
}
