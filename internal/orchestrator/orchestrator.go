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

package orchestrator

import (
	"context"
	"net/http"
	"sync"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/contentresolver/webcontent"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/licensing/ethconnect"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/internal/parcelstatus"
	"github.com/geo-web-project/cadastred/internal/pinning/ipfs"
	"github.com/geo-web-project/cadastred/internal/pinstatus"
	"github.com/geo-web-project/cadastred/internal/recordsource/subgraph"
	"github.com/geo-web-project/cadastred/internal/restclient"
	"github.com/geo-web-project/cadastred/internal/wsserver"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/geo-web-project/cadastred/pkg/contentresolver"
	"github.com/geo-web-project/cadastred/pkg/licensing"
	"github.com/geo-web-project/cadastred/pkg/pinning"
	"github.com/geo-web-project/cadastred/pkg/recordsource"
)

var (
	pinningConfig         = config.NewPluginConfig("pinning")
	licensingConfig       = config.NewPluginConfig("licensing")
	contentResolverConfig = config.NewPluginConfig("contentresolver")
	recordSourceConfig    = config.NewPluginConfig("recordsource")
)

// Orchestrator is the main interface behind the API, implementing the actions
type Orchestrator interface {
	Init(ctx context.Context) error
	Start() error
	Close()

	// Parcels
	GetParcels(ctx context.Context, skip int) (*cadtypes.ParcelPage, error)
	SelectParcel(ctx context.Context, id string) (*cadtypes.ParcelSelection, error)
	RequestRefetch()

	// Pins
	PinStatus(ctx context.Context, streamID, cid string) cadtypes.PinState
	RetryPin(ctx context.Context, streamID, cid string) error
	RemoveAndUnpin(ctx context.Context, streamID, cid string) error

	// Event stream
	WSHandler() http.HandlerFunc
}

type orchestrator struct {
	ctx             context.Context
	pinning         pinning.Plugin
	licensing       licensing.Plugin
	contentResolver contentresolver.Plugin
	recordSource    recordsource.Plugin
	tracker         *pinstatus.Tracker
	coordinator     *parcelstatus.Coordinator
	ws              wsserver.WebSocketServer

	pageMux      sync.Mutex
	lastResolved map[string]*cadtypes.ResolvedParcel
}

func NewOrchestrator() Orchestrator {
	o := &orchestrator{}

	// Initialize the config on all the plugins
	(&ipfs.IPFS{}).InitPrefix(pinningConfig.SubPrefix("ipfs"))
	(&ethconnect.Ethconnect{}).InitPrefix(licensingConfig.SubPrefix("ethconnect"))
	(&webcontent.WebContent{}).InitPrefix(contentResolverConfig.SubPrefix("webcontent"))
	(&subgraph.Subgraph{}).InitPrefix(recordSourceConfig.SubPrefix("subgraph"))

	return o
}

func (o *orchestrator) Init(ctx context.Context) (err error) {
	o.ctx = ctx
	err = o.initPlugins(ctx)
	if err == nil {
		o.initComponents(ctx)
	}
	return err
}

func (o *orchestrator) Start() error {
	log.L(o.ctx).Infof("Orchestrator started")
	return nil
}

func (o *orchestrator) Close() {
	if o.ws != nil {
		o.ws.Close()
		o.ws = nil
	}
}

func (o *orchestrator) initPlugins(ctx context.Context) (err error) {

	if o.pinning == nil {
		// Pinning is an optional collaborator. Without it there is no pin
		// tracking, and pin states report as inactive.
		ipfsPrefix := pinningConfig.SubPrefix("ipfs")
		if ipfsPrefix.SubPrefix(ipfs.IPFSConfAPISubconf).GetString(restclient.HTTPConfigURL) == "" {
			log.L(ctx).Infof("No pinning service configured - pin tracking disabled")
		} else {
			plugin := &ipfs.IPFS{}
			if err = plugin.Init(ctx, ipfsPrefix); err != nil {
				return err
			}
			o.pinning = plugin
		}
	}

	if o.licensing == nil {
		plugin := &ethconnect.Ethconnect{}
		if err = plugin.Init(ctx, licensingConfig.SubPrefix("ethconnect")); err != nil {
			return err
		}
		o.licensing = plugin
	}

	if o.contentResolver == nil {
		plugin := &webcontent.WebContent{}
		if err = plugin.Init(ctx, contentResolverConfig.SubPrefix("webcontent")); err != nil {
			return err
		}
		o.contentResolver = plugin
	}

	if o.recordSource == nil {
		plugin := &subgraph.Subgraph{}
		if err = plugin.Init(ctx, recordSourceConfig.SubPrefix("subgraph")); err != nil {
			return err
		}
		o.recordSource = plugin
	}

	return nil
}

func (o *orchestrator) initComponents(ctx context.Context) {
	if o.ws == nil {
		o.ws = wsserver.NewWebSocketServer(ctx)
	}
	if o.tracker == nil {
		o.tracker = pinstatus.NewTracker(ctx, o.pinning, o.pinStateChanged)
	}
	if o.coordinator == nil {
		resolver := parcelstatus.NewResolver(ctx, o.licensing, o.contentResolver)
		o.coordinator = parcelstatus.NewCoordinator(ctx, resolver)
	}
}

func (o *orchestrator) pinStateChanged(identifier string, state cadtypes.PinState) {
	o.ws.Broadcast(wsserver.TopicPins, &wsserver.PinStateEvent{
		Type:       "pin-state",
		Identifier: identifier,
		State:      state,
	})
}

// GetParcels fetches one page of records from the record source and
// resolves it to statuses. An observed refetch request returns the page
// to offset zero, and is cleared here once acted on.
func (o *orchestrator) GetParcels(ctx context.Context, skip int) (*cadtypes.ParcelPage, error) {
	if o.coordinator.RefetchRequested() {
		log.L(ctx).Debugf("Refetch requested - returning to offset zero")
		skip = 0
		o.coordinator.ClearRefetch()
	}

	records, err := o.recordSource.GetParcels(ctx, skip)
	if err != nil {
		return nil, err
	}
	page, err := o.coordinator.ResolveBatch(ctx, skip, records)
	if err != nil {
		return nil, err
	}

	o.pageMux.Lock()
	o.lastResolved = make(map[string]*cadtypes.ResolvedParcel, len(page.Parcels))
	for _, parcel := range page.Parcels {
		o.lastResolved[parcel.ID] = parcel
	}
	o.pageMux.Unlock()
	return page, nil
}

// SelectParcel returns the map selection payload for a parcel on the most
// recently resolved page
func (o *orchestrator) SelectParcel(ctx context.Context, id string) (*cadtypes.ParcelSelection, error) {
	o.pageMux.Lock()
	parcel := o.lastResolved[id]
	o.pageMux.Unlock()
	if parcel == nil {
		return nil, i18n.NewError(ctx, i18n.MsgUnknownParcel, id)
	}
	return &cadtypes.ParcelSelection{ID: parcel.ID, Center: parcel.Center}, nil
}

func (o *orchestrator) RequestRefetch() {
	o.coordinator.RequestRefetch()
}

func (o *orchestrator) PinStatus(ctx context.Context, streamID, cid string) cadtypes.PinState {
	return o.tracker.Observe(ctx, cadtypes.NewPinnableItem(streamID, cid))
}

func (o *orchestrator) RetryPin(ctx context.Context, streamID, cid string) error {
	if o.pinning == nil {
		return i18n.NewError(ctx, i18n.MsgPinningUnavailable)
	}
	return o.tracker.RetryPin(ctx, cadtypes.NewPinnableItem(streamID, cid))
}

func (o *orchestrator) RemoveAndUnpin(ctx context.Context, streamID, cid string) error {
	if o.pinning == nil {
		return i18n.NewError(ctx, i18n.MsgPinningUnavailable)
	}
	return o.tracker.UnpinCid(ctx, cadtypes.NewPinnableItem(streamID, cid))
}

func (o *orchestrator) WSHandler() http.HandlerFunc {
	return o.ws.Handler()
}
