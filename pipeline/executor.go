// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"context"

	"github.com/threekingdoms/engine/gameerr"
)

// Run executes stages in order, threading each stage's output into the
// next. It stops and returns the first error, wrapped with the failing
// stage's name via gameerr.Wrap so a resolver failure's CallStack picks up
// exactly which internal step broke — one level below the resolution
// stack itself.
func Run(ctx context.Context, input any, stages ...Named) (any, error) {
	value := input
	for _, s := range stages {
		out, err := s.Stage(ctx, value)
		if err != nil {
			return nil, gameerr.Wrap(err, s.Name, gameerr.AddToCallStack(s.Name))
		}
		value = out
	}
	return value, nil
}
