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

package parcelstatus

import (
	"context"
	"fmt"
	"time"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/geo-web-project/cadastred/pkg/contentresolver"
	"github.com/geo-web-project/cadastred/pkg/licensing"
)

// bidPeriodWait is how long the licensee has to respond to a pending bid
// before the license must transfer to the bidder
const bidPeriodWait = 7 * 24 * time.Hour

// Resolver derives the lifecycle status of a single parcel record, by
// chaining reads against the parcel's license contract and the content
// resolver. Each record resolves through four strictly sequential steps,
// as later steps override the status derived by earlier ones.
type Resolver struct {
	ctx             context.Context
	licensing       licensing.Plugin
	contentResolver contentresolver.Plugin
	registryAddress string
	now             func() time.Time
}

func NewResolver(ctx context.Context, li licensing.Plugin, cr contentresolver.Plugin) *Resolver {
	return &Resolver{
		ctx:             ctx,
		licensing:       li,
		contentResolver: cr,
		registryAddress: config.GetString(config.RegistryAddress),
		now:             time.Now,
	}
}

// Resolve derives the status, display name, price and map center for one
// record. A nil result with a nil error means the record was dropped as
// malformed. A non-nil error means a remote read failed, rejecting this
// record's resolution only.
func (r *Resolver) Resolve(ctx context.Context, record *cadtypes.ParcelRecord) (*cadtypes.ResolvedParcel, error) {

	// Step 1: initial status from the shape of the bids
	var status cadtypes.ParcelStatus
	var price *cadtypes.BigInt
	pending := record.PendingBid
	pendingActive := false
	switch {
	case pending == nil || pending.ContributionRate.Sign() == 0:
		status = cadtypes.ParcelStatusValid
		price = record.CurrentBid.Price
	case pending.ContributionRate.Sign() > 0:
		status = cadtypes.ParcelStatusOutstandingBid
		price = pending.Price
		pendingActive = true
	default:
		// A negative contribution rate cannot come from a well-formed
		// source. Exclude the record rather than failing the page.
		log.L(ctx).Debugf("Dropping parcel: %s", i18n.Expand(ctx, i18n.MsgInvalidContributionRate, record.ID))
		return nil, nil
	}

	// Step 2: the pending bid's waiting period may have elapsed, or the
	// contract may report it should end early
	if pendingActive {
		endEarly, err := r.licensing.ShouldBidPeriodEndEarly(ctx, record.LicenseAddress)
		if err != nil {
			return nil, err
		}
		deadline := time.Unix(pending.Timestamp, 0).Add(bidPeriodWait)
		if endEarly || r.now().After(deadline) {
			status = cadtypes.ParcelStatusNeedsTransfer
			price = pending.Price
		}
	}

	// Step 3: foreclosure overrides everything above
	active, err := r.licensing.IsPayerBidActive(ctx, record.LicenseAddress)
	if err != nil {
		return nil, err
	}
	if !active {
		status = cadtypes.ParcelStatusInForeclosure
	}

	// Step 4: enrich with the display name and map center
	name := fmt.Sprintf("Parcel %s", record.ID)
	content, err := r.contentResolver.GetContent(ctx, r.registryAddress, record.ID, record.Owner)
	if err != nil {
		return nil, err
	}
	if content != nil && content.Name != "" {
		name = content.Name
	}

	return &cadtypes.ResolvedParcel{
		ID:            record.ID,
		CreationBlock: record.CreationBlock,
		Status:        status,
		Name:          name,
		Price:         price,
		Center:        record.BBox.Centroid(),
	}, nil
}
