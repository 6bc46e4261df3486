// Copyright © 2023 Geo Web Project
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pinstatus

import (
	"context"
	"sync"
	"time"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/geo-web-project/cadastred/pkg/pinning"
)

// Notifier receives pin state transitions as they happen, for streaming
// out to connected clients. It must not call back into the tracker.
type Notifier func(identifier string, state cadtypes.PinState)

// Tracker derives the pin state of observed items from the pinning
// collaborator's pinned and failed sets, and self-heals a stuck Pinning
// state to NotFound when a liveness probe misses its deadline.
//
// Each entry into Pinning starts exactly one probe: a preload through the
// content gateway raced against a timer. Whichever side finishes first
// settles the probe, and the loser's transition is a no-op.
type Tracker struct {
	ctx          context.Context
	plugin       pinning.Plugin
	probeTimeout time.Duration
	notifier     Notifier

	mux    sync.Mutex
	states map[string]cadtypes.PinState
	probes map[string]*probe
}

type probe struct {
	item    *cadtypes.PinnableItem
	settled bool
	timer   *time.Timer
}

func NewTracker(ctx context.Context, plugin pinning.Plugin, notifier Notifier) *Tracker {
	return &Tracker{
		ctx:          log.WithLogField(ctx, "role", "pinstatus"),
		plugin:       plugin,
		probeTimeout: config.GetDuration(config.PinsProbeTimeout),
		notifier:     notifier,
		states:       make(map[string]cadtypes.PinState),
		probes:       make(map[string]*probe),
	}
}

// DeriveState is the pure state derivation from one snapshot of the
// pinned/failed observations. Pinned wins over failed-set membership.
func DeriveState(pinned, failed bool) cadtypes.PinState {
	switch {
	case pinned:
		return cadtypes.PinStatePinned
	case failed:
		return cadtypes.PinStateFailed
	default:
		return cadtypes.PinStatePinning
	}
}

// Observe re-derives the state of one item from the collaborator's current
// pinned and failed sets. A nil pinning collaborator means no tracking.
// Remote read failures degrade the item to NotFound rather than erroring,
// leaving the user a visible retry affordance.
func (t *Tracker) Observe(ctx context.Context, item *cadtypes.PinnableItem) cadtypes.PinState {
	if t.plugin == nil {
		return cadtypes.PinStateNone
	}
	identifier := item.Identifier()

	pinned, err := t.plugin.IsPinned(ctx, item.CID)
	var failedSet map[string]bool
	if err == nil {
		failedSet, err = t.plugin.FailedPins(ctx)
	}
	if err != nil {
		log.L(ctx).Warnf("Pin observation of %s failed: %s", identifier, err)
		return t.transition(identifier, cadtypes.PinStateNotFound, nil)
	}

	derived := DeriveState(pinned, failedSet[identifier])
	return t.transition(identifier, derived, item)
}

func (t *Tracker) transition(identifier string, derived cadtypes.PinState, item *cadtypes.PinnableItem) cadtypes.PinState {
	t.mux.Lock()
	previous := t.states[identifier]

	if derived == cadtypes.PinStatePinning {
		// A probe that already concluded NotFound stands until an external
		// update (such as a retry) moves the item on
		if previous == cadtypes.PinStateNotFound {
			t.mux.Unlock()
			return previous
		}
		if previous != cadtypes.PinStatePinning {
			t.startProbe(item)
		}
	} else {
		t.settleProbe(identifier)
	}

	t.states[identifier] = derived
	t.mux.Unlock()
	if derived != previous {
		t.notify(identifier, derived)
	}
	return derived
}

// startProbe must be called with the lock held. Any outstanding probe for
// the identifier is settled first, so its timer becomes a no-op, then a
// fresh race begins with a fresh settled flag.
func (t *Tracker) startProbe(item *cadtypes.PinnableItem) {
	identifier := item.Identifier()
	t.settleProbe(identifier)

	p := &probe{item: item}
	t.probes[identifier] = p
	p.timer = time.AfterFunc(t.probeTimeout, func() {
		t.probeTimedOut(p)
	})
	go t.runPreload(p)
	log.L(t.ctx).Debugf("Started liveness probe for %s (deadline %s)", identifier, t.probeTimeout)
}

// settleProbe must be called with the lock held
func (t *Tracker) settleProbe(identifier string) {
	if p := t.probes[identifier]; p != nil && !p.settled {
		p.settled = true
		p.timer.Stop()
	}
	delete(t.probes, identifier)
}

func (t *Tracker) runPreload(p *probe) {
	identifier := p.item.Identifier()
	err := t.plugin.Preload(t.ctx, p.item.CID)

	t.mux.Lock()
	if p.settled {
		t.mux.Unlock()
		return
	}
	p.settled = true
	p.timer.Stop()
	if err == nil {
		// Confirmed live. No transition here - the external pinned
		// observation will promote the state in due course.
		t.mux.Unlock()
		log.L(t.ctx).Debugf("Liveness probe confirmed %s", identifier)
		return
	}
	t.states[identifier] = cadtypes.PinStateNotFound
	t.mux.Unlock()
	log.L(t.ctx).Infof("Liveness probe rejected %s: %s", identifier, err)
	t.notify(identifier, cadtypes.PinStateNotFound)
}

func (t *Tracker) probeTimedOut(p *probe) {
	identifier := p.item.Identifier()
	t.mux.Lock()
	if p.settled {
		t.mux.Unlock()
		return
	}
	p.settled = true
	t.states[identifier] = cadtypes.PinStateNotFound
	t.mux.Unlock()
	log.L(t.ctx).Infof("Liveness probe for %s missed %s deadline", identifier, t.probeTimeout)
	t.notify(identifier, cadtypes.PinStateNotFound)
}

func (t *Tracker) notify(identifier string, state cadtypes.PinState) {
	if t.notifier != nil {
		t.notifier(identifier, state)
	}
}

// RetryPin delegates the retry to the pinning collaborator, then forgets
// the item's state so the next observation re-enters Pinning from scratch
func (t *Tracker) RetryPin(ctx context.Context, item *cadtypes.PinnableItem) error {
	if err := t.plugin.RetryPin(ctx, item); err != nil {
		return err
	}
	t.forget(item.Identifier())
	return nil
}

// UnpinCid releases the pin with the collaborator and stops tracking the item
func (t *Tracker) UnpinCid(ctx context.Context, item *cadtypes.PinnableItem) error {
	if err := t.plugin.UnpinCid(ctx, item.CID); err != nil {
		return err
	}
	t.forget(item.Identifier())
	return nil
}

func (t *Tracker) forget(identifier string) {
	t.mux.Lock()
	t.settleProbe(identifier)
	delete(t.states, identifier)
	t.mux.Unlock()
}
