// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config holds the plain data an embedder supplies to start a
// game: how many players and their seats/heroes/health, the deck's card
// catalog, and the seed a fresh rng.Source is built from. It has no
// behavior of its own beyond a couple of default-producing factories —
// actually building a model.Game from a config is engine's job.
package config
