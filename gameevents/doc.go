// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gameevents is the concrete event catalog that flows over the
// events.Bus: PhaseStart/PhaseEnd, TurnEnd,
// CardMoved/CardsMoved, CardUsed, BeforeDamage/AfterDamage, HpLost,
// BeforeRecover/AfterRecover, JudgementRequested/JudgementCompleted,
// DyingEntered/DyingResolved, DrawPhaseReplaced. Each type implements
// events.Event by returning a constant Type; mutable accumulator events
// (BeforeDamage, BeforeRecover) additionally embed an events.Accumulator
// subscribers adjust before the publisher reads the final total.
package gameevents
