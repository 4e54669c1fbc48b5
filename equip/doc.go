// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package equip validates and performs equipment changes: at most one
// card per slot, with equipping over an occupied slot counting as
// Unequip-then-Equip. Grounded on the toolkit's
// items/validation/validator.go CanEquip/CanUnequip shape — adapted from
// a generic strength/proficiency/attunement requirement check (none of
// which this game has) down to the one requirement this game's equipment
// actually has: slot occupancy.
package equip
