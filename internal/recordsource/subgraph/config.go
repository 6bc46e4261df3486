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

package subgraph

import (
	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/restclient"
)

const (
	defaultBackoffInitialDelay = "100ms"
	defaultBackoffMaxDelay     = "5s"
	defaultMaxAttempts         = 3
)

const (
	// SubgraphConfBackoffInitialDelay is the initial delay before retrying a failed query
	SubgraphConfBackoffInitialDelay = "backoff.initialDelay"
	// SubgraphConfBackoffMaxDelay is the ceiling on the backoff delay between retries
	SubgraphConfBackoffMaxDelay = "backoff.maxDelay"
	// SubgraphConfMaxAttempts is how many times to attempt a query before giving up
	SubgraphConfMaxAttempts = "backoff.maxAttempts"
)

func (s *Subgraph) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix)
	prefix.AddKnownKey(SubgraphConfBackoffInitialDelay, defaultBackoffInitialDelay)
	prefix.AddKnownKey(SubgraphConfBackoffMaxDelay, defaultBackoffMaxDelay)
	prefix.AddKnownKey(SubgraphConfMaxAttempts, defaultMaxAttempts)
}
