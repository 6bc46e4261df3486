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

package recordsource

import (
	"context"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
)

// Plugin is the interface implemented by each raw parcel record source
type Plugin interface {
	// Name returns the name of the plugin implementation
	Name() string

	// InitPrefix initializes the set of configuration options that are valid, with defaults
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// GetParcels fetches one page of raw parcel records starting at the
	// given offset. The page size is the source's configured page size.
	GetParcels(ctx context.Context, skip int) ([]*cadtypes.ParcelRecord, error)
}

type Capabilities struct {
}
