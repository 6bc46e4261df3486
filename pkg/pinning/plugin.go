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

package pinning

import (
	"context"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
)

// Plugin is the interface implemented by each pinning collaborator, giving
// durability guarantees for content-addressed media objects
type Plugin interface {
	// Name returns the name of the plugin implementation
	Name() string

	// InitPrefix initializes the set of configuration options that are valid, with defaults
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// IsPinned checks whether the content store currently holds a pin for the CID
	IsPinned(ctx context.Context, cid string) (bool, error)

	// FailedPins returns a snapshot of the identifiers whose last pin attempt failed
	FailedPins(ctx context.Context) (map[string]bool, error)

	// RetryPin clears any failed state for the item and re-attempts the pin
	RetryPin(ctx context.Context, item *cadtypes.PinnableItem) error

	// UnpinCid releases the pin on a CID ahead of removal
	UnpinCid(ctx context.Context, cid string) error

	// Preload confirms the content is retrievable from the content store.
	// It returns nil on a successful liveness confirmation, and an error otherwise.
	Preload(ctx context.Context, cid string) error
}

type Capabilities struct {
}
