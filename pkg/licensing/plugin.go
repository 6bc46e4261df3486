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

package licensing

import (
	"context"

	"github.com/geo-web-project/cadastred/internal/config"
)

// Plugin is the interface implemented by each license contract collaborator.
// Each parcel has its own license contract instance, addressed per call.
type Plugin interface {
	// Name returns the name of the plugin implementation
	Name() string

	// InitPrefix initializes the set of configuration options that are valid, with defaults
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// ShouldBidPeriodEndEarly queries whether the contract reports the pending
	// bid's waiting period should be treated as already elapsed
	ShouldBidPeriodEndEarly(ctx context.Context, licenseAddress string) (bool, error)

	// IsPayerBidActive queries whether the licensee's payment stream is active
	IsPayerBidActive(ctx context.Context, licenseAddress string) (bool, error)
}

type Capabilities struct {
}
