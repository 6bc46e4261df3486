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

package cadtypes

import "strings"

// PinState is the tracked liveness state of one content-addressed media object
type PinState string

const (
	// PinStateNone tracking is inactive (no pinning collaborator available)
	PinStateNone PinState = ""
	// PinStatePinned the content store reports the object is pinned
	PinStatePinned PinState = "pinned"
	// PinStatePinning the object is neither pinned nor failed; a liveness probe is in flight
	PinStatePinning PinState = "pinning"
	// PinStateFailed a pin attempt for the object failed
	PinStateFailed PinState = "failed"
	// PinStateNotFound the liveness probe rejected or exceeded its deadline
	PinStateNotFound PinState = "notfound"
)

// NormalizeCID strips any URI scheme prefix from a content identifier
func NormalizeCID(cidURI string) string {
	if idx := strings.Index(cidURI, "://"); idx >= 0 {
		return cidURI[idx+3:]
	}
	return cidURI
}

// PinnableItem identifies one content-addressed media object within a stream
type PinnableItem struct {
	StreamID string
	CID      string // normalized, no URI scheme
}

// NewPinnableItem builds an item from its source stream and a CID that may
// carry a URI scheme prefix
func NewPinnableItem(streamID, cidURI string) *PinnableItem {
	return &PinnableItem{
		StreamID: streamID,
		CID:      NormalizeCID(cidURI),
	}
}

// Identifier is the key the item is tracked under, derived once from
// immutable source data
func (p *PinnableItem) Identifier() string {
	return p.StreamID + "-" + p.CID
}
