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
	"context"
	"fmt"
	"sync"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/internal/restclient"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/geo-web-project/cadastred/pkg/pinning"
	"github.com/go-resty/resty/v2"
)

// IPFS pins media against a local or remote IPFS node, and preloads
// content through its gateway to confirm liveness
type IPFS struct {
	ctx          context.Context
	capabilities *pinning.Capabilities
	apiClient    *resty.Client
	gwClient     *resty.Client

	failedMux sync.Mutex
	failed    map[string]bool // identifiers whose last pin attempt failed
}

type ipfsPinLsResponse struct {
	Keys map[string]struct {
		Type string `json:"Type"`
	} `json:"Keys"`
}

type ipfsPinAddResponse struct {
	Pins []string `json:"Pins"`
}

func (i *IPFS) Name() string {
	return "ipfs"
}

func (i *IPFS) Init(ctx context.Context, prefix config.Prefix) error {

	i.ctx = log.WithLogField(ctx, "pinning", "ipfs")
	i.failed = make(map[string]bool)

	apiPrefix := prefix.SubPrefix(IPFSConfAPISubconf)
	if apiPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, apiPrefix.Resolve(restclient.HTTPConfigURL), "ipfs")
	}
	i.apiClient = restclient.New(i.ctx, apiPrefix)
	gwPrefix := prefix.SubPrefix(IPFSConfGatewaySubconf)
	if gwPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, gwPrefix.Resolve(restclient.HTTPConfigURL), "ipfs")
	}
	i.gwClient = restclient.New(i.ctx, gwPrefix)
	i.capabilities = &pinning.Capabilities{}
	return nil
}

func (i *IPFS) Capabilities() *pinning.Capabilities {
	return i.capabilities
}

func (i *IPFS) IsPinned(ctx context.Context, cid string) (bool, error) {
	var pinLsResponse ipfsPinLsResponse
	res, err := i.apiClient.R().
		SetContext(ctx).
		SetQueryParam("arg", cid).
		SetResult(&pinLsResponse).
		Post("/api/v0/pin/ls")
	if err != nil || !res.IsSuccess() {
		// The IPFS API reports an unpinned CID as an error, rather than an empty set
		if res != nil && res.StatusCode() == 500 {
			return false, nil
		}
		return false, restclient.WrapRestErr(i.ctx, res, err, i18n.MsgIPFSRESTErr)
	}
	_, pinned := pinLsResponse.Keys[cid]
	return pinned, nil
}

func (i *IPFS) FailedPins(ctx context.Context) (map[string]bool, error) {
	i.failedMux.Lock()
	defer i.failedMux.Unlock()
	snapshot := make(map[string]bool, len(i.failed))
	for id := range i.failed {
		snapshot[id] = true
	}
	return snapshot, nil
}

func (i *IPFS) RetryPin(ctx context.Context, item *cadtypes.PinnableItem) error {
	identifier := item.Identifier()
	i.failedMux.Lock()
	delete(i.failed, identifier)
	i.failedMux.Unlock()

	var pinAddResponse ipfsPinAddResponse
	res, err := i.apiClient.R().
		SetContext(ctx).
		SetQueryParam("arg", item.CID).
		SetResult(&pinAddResponse).
		Post("/api/v0/pin/add")
	if err != nil || !res.IsSuccess() {
		i.failedMux.Lock()
		i.failed[identifier] = true
		i.failedMux.Unlock()
		return restclient.WrapRestErr(i.ctx, res, err, i18n.MsgIPFSRESTErr)
	}
	log.L(ctx).Infof("IPFS pinned %s", item.CID)
	return nil
}

func (i *IPFS) UnpinCid(ctx context.Context, cid string) error {
	res, err := i.apiClient.R().
		SetContext(ctx).
		SetQueryParam("arg", cid).
		Post("/api/v0/pin/rm")
	if err != nil || !res.IsSuccess() {
		return restclient.WrapRestErr(i.ctx, res, err, i18n.MsgIPFSRESTErr)
	}
	log.L(ctx).Infof("IPFS unpinned %s", cid)
	return nil
}

func (i *IPFS) Preload(ctx context.Context, cid string) error {
	res, err := i.gwClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/ipfs/%s", cid))
	restclient.OnAfterResponse(i.gwClient, res) // required using SetDoNotParseResponse
	if err != nil || !res.IsSuccess() {
		if res != nil && res.RawBody() != nil {
			_ = res.RawBody().Close()
		}
		return restclient.WrapRestErr(i.ctx, res, err, i18n.MsgIPFSRESTErr)
	}
	_ = res.RawBody().Close()
	log.L(ctx).Debugf("IPFS preloaded %s", cid)
	return nil
}
