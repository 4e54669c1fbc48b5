// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package skill is the Skill Registry & Manager. The registry maps a
// skill ID to a factory producing a fresh Instance, and a hero ID to the
// list of skill IDs it grants. The Manager keeps, per player, the union
// of hero-loaded and equipment-granted skill instances,
// attaching/detaching them as equipment or hero load events happen and
// exposing typed capability lookups (TargetFilter, DistanceModifier,
// ...) other packages (rules, resolve) query directly rather than
// hard-coding skill names.
//
// Grounded on the toolkit's rulebooks/dnd5e/conditions/manager.go
// ApplyCondition/RemoveCondition lifecycle: a condition there and a
// skill here both (a) subscribe to the event bus on attach, (b)
// unsubscribe everything on detach, and (c) are looked up by the
// capability they expose rather than by a type switch over a class
// hierarchy — polymorphism through composed interfaces, not inheritance.
package skill
