// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package choice defines the boundary across which a resolver asks a
// human (or AI) player to pick cards, targets, or an option, and gets
// an answer back. The engine itself never blocks on I/O: a resolver
// calls a Responder synchronously and proceeds with whatever
// ChoiceResult comes back, the same way the toolkit's own mechanics
// call out to an injected collaborator (an EventBus, a Roller) rather
// than opening a channel and waiting on it.
package choice
