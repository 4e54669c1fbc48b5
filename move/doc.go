// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package move is the Card Move Service: the only legal writer of card
// zone membership. Every relocation goes through Service.Move with an
// explicit Request, is applied atomically, and emits a CardMoved event
// per card plus one batched CardsMoved event.
//
// Grounded on the toolkit's items/validation/validator.go CanEquip shape
// for the equip-slot check (see equip.Validate), adapted here to a
// zone-transition service rather than a standalone validator function —
// this engine's "equip" concept is a move, since equipping over an
// occupied slot counts as Unequip then Equip and emits both events, not
// a one-shot check.
package move
