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

package webcontent

import (
	"context"
	"fmt"
	"time"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/internal/restclient"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/geo-web-project/cadastred/pkg/contentresolver"
	"github.com/go-resty/resty/v2"
	"github.com/karlseguin/ccache"
)

// WebContent resolves parcel content documents from the Geo Web content
// service, with a TTL cache in front so page refreshes do not refetch
// every parcel's document
type WebContent struct {
	ctx          context.Context
	capabilities *contentresolver.Capabilities
	client       *resty.Client
	cache        *ccache.Cache
	cacheTTL     time.Duration
}

type contentDocument struct {
	Name string `json:"name"`
}

func (w *WebContent) Name() string {
	return "webcontent"
}

func (w *WebContent) Init(ctx context.Context, prefix config.Prefix) error {

	w.ctx = log.WithLogField(ctx, "contentresolver", "webcontent")

	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(restclient.HTTPConfigURL), "webcontent")
	}
	w.client = restclient.New(w.ctx, prefix)
	w.cacheTTL = prefix.GetDuration(WebContentConfigCacheTTL)
	w.cache = ccache.New(
		ccache.Configure().MaxSize(int64(prefix.GetInt(WebContentConfigCacheLimit))),
	)
	w.capabilities = &contentresolver.Capabilities{}
	return nil
}

func (w *WebContent) Capabilities() *contentresolver.Capabilities {
	return w.capabilities
}

func (w *WebContent) GetContent(ctx context.Context, registryAddress, parcelID, ownerAddress string) (*cadtypes.ParcelContent, error) {

	cacheKey := fmt.Sprintf("%s/%s/%s", registryAddress, parcelID, ownerAddress)
	if cached := w.cache.Get(cacheKey); cached != nil {
		cached.Extend(w.cacheTTL)
		return cached.Value().(*cadtypes.ParcelContent), nil
	}

	var doc contentDocument
	res, err := w.client.R().
		SetContext(ctx).
		SetQueryParam("owner", ownerAddress).
		SetResult(&doc).
		Get(fmt.Sprintf("/content/%s/%s", registryAddress, parcelID))
	if err != nil || !res.IsSuccess() {
		// A parcel without a published content document is not an error
		if res != nil && res.StatusCode() == 404 {
			return nil, nil
		}
		return nil, restclient.WrapRestErr(w.ctx, res, err, i18n.MsgContentRESTErr)
	}

	content := &cadtypes.ParcelContent{Name: doc.Name}
	w.cache.Set(cacheKey, content, w.cacheTTL)
	log.L(ctx).Debugf("Resolved content for parcel %s", parcelID)
	return content, nil
}
