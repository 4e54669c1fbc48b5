// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rules holds pure query services over (Game, actor, candidate,
// usage count, phase) that never mutate state. Each service consults
// skill.Manager for the capability interfaces relevant to it and folds
// their outputs over a base value — Phase, Range, Limit, Usage,
// Response.
package rules
