// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package events provides the synchronous, ordered publish/subscribe bus that
// every rule service and skill in the engine observes. Publication blocks
// until every subscriber has returned; subscribers may themselves publish
// further events (re-entrancy), which are fully delivered before control
// returns to the original publisher.
package events
