// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package action enumerates the ActionDescriptors available to an actor:
// hand card uses (including any live conversion's virtual recastings),
// each alive skill's phase-limited action, and the built-in phase
// transitions. It holds no dependency on package resolve — mapping a
// chosen {action, choice} pair onto a resolution is a concern of the
// caller that already holds both a Descriptor and a resolve.Context.
package action
