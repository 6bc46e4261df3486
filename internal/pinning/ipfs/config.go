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

package ipfs

import (
	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/restclient"
)

const (
	// IPFSConfAPISubconf is the REST configuration for the IPFS API endpoint
	IPFSConfAPISubconf = "api"
	// IPFSConfGatewaySubconf is the REST configuration for the IPFS gateway endpoint
	IPFSConfGatewaySubconf = "gateway"
)

func (i *IPFS) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix.SubPrefix(IPFSConfAPISubconf))
	restclient.InitPrefix(prefix.SubPrefix(IPFSConfGatewaySubconf))
}
