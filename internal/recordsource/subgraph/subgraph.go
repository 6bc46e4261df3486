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
	"context"
	"strconv"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/internal/restclient"
	"github.com/geo-web-project/cadastred/internal/retry"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/geo-web-project/cadastred/pkg/recordsource"
	"github.com/go-resty/resty/v2"
)

// Subgraph sources raw parcel records from the registry subgraph, a GraphQL
// index of the on-chain registry contract
type Subgraph struct {
	ctx          context.Context
	capabilities *recordsource.Capabilities
	client       *resty.Client
	retry        retry.Retry
	maxAttempts  int
}

const parcelsQuery = `query CadastreParcels($first: Int, $skip: Int) {
  geoWebParcels(first: $first, skip: $skip, orderBy: createdAtBlock, orderDirection: desc) {
    id
    createdAtBlock
    bboxNorth
    bboxSouth
    bboxEast
    bboxWest
    licenseOwner
    licenseAddress
    currentBid { price contributionRate timestamp }
    pendingBid { price contributionRate timestamp }
  }
}`

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		Parcels []*subgraphParcel `json:"geoWebParcels"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type subgraphBid struct {
	Price            *cadtypes.BigInt `json:"price"`
	ContributionRate *cadtypes.BigInt `json:"contributionRate"`
	Timestamp        string           `json:"timestamp"`
}

type subgraphParcel struct {
	ID             string       `json:"id"`
	CreatedAtBlock string       `json:"createdAtBlock"`
	BboxNorth      float64      `json:"bboxNorth"`
	BboxSouth      float64      `json:"bboxSouth"`
	BboxEast       float64      `json:"bboxEast"`
	BboxWest       float64      `json:"bboxWest"`
	LicenseOwner   string       `json:"licenseOwner"`
	LicenseAddress string       `json:"licenseAddress"`
	CurrentBid     *subgraphBid `json:"currentBid"`
	PendingBid     *subgraphBid `json:"pendingBid"`
}

func (s *Subgraph) Name() string {
	return "subgraph"
}

func (s *Subgraph) Init(ctx context.Context, prefix config.Prefix) error {

	s.ctx = log.WithLogField(ctx, "recordsource", "subgraph")

	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(restclient.HTTPConfigURL), "subgraph")
	}
	s.client = restclient.New(s.ctx, prefix)
	s.retry = retry.Retry{
		InitialDelay: prefix.GetDuration(SubgraphConfBackoffInitialDelay),
		MaximumDelay: prefix.GetDuration(SubgraphConfBackoffMaxDelay),
	}
	s.maxAttempts = prefix.GetInt(SubgraphConfMaxAttempts)
	s.capabilities = &recordsource.Capabilities{}
	return nil
}

func (s *Subgraph) Capabilities() *recordsource.Capabilities {
	return s.capabilities
}

func (s *Subgraph) GetParcels(ctx context.Context, skip int) ([]*cadtypes.ParcelRecord, error) {

	request := &graphQLRequest{
		Query: parcelsQuery,
		Variables: map[string]interface{}{
			"first": config.GetInt(config.ParcelsPageSize),
			"skip":  skip,
		},
	}

	var response graphQLResponse
	err := s.retry.Do(ctx, "subgraph query", func(attempt int) (bool, error) {
		res, err := s.client.R().
			SetContext(ctx).
			SetBody(request).
			SetResult(&response).
			Post("")
		if err != nil || !res.IsSuccess() {
			err = restclient.WrapRestErr(s.ctx, res, err, i18n.MsgSubgraphRESTErr)
			return attempt < s.maxAttempts, err
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if len(response.Errors) > 0 {
		return nil, i18n.NewError(ctx, i18n.MsgSubgraphQueryErrors, response.Errors[0].Message)
	}

	records := make([]*cadtypes.ParcelRecord, 0, len(response.Data.Parcels))
	for _, parcel := range response.Data.Parcels {
		record, err := parcel.toRecord(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	log.L(ctx).Debugf("Fetched %d parcel records (skip=%d)", len(records), skip)
	return records, nil
}

func (p *subgraphParcel) toRecord(ctx context.Context) (*cadtypes.ParcelRecord, error) {
	block, err := strconv.ParseUint(p.CreatedAtBlock, 10, 64)
	if err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgSubgraphBadRecord, p.ID, err)
	}
	record := &cadtypes.ParcelRecord{
		ID:            p.ID,
		CreationBlock: block,
		BBox: cadtypes.BoundingBox{
			West:  p.BboxWest,
			South: p.BboxSouth,
			East:  p.BboxEast,
			North: p.BboxNorth,
		},
		Owner:          p.LicenseOwner,
		LicenseAddress: p.LicenseAddress,
	}
	if p.CurrentBid != nil {
		currentBid, err := p.CurrentBid.toBid(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		record.CurrentBid = *currentBid
	}
	if p.PendingBid != nil {
		if record.PendingBid, err = p.PendingBid.toBid(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return record, nil
}

func (b *subgraphBid) toBid(ctx context.Context, parcelID string) (*cadtypes.Bid, error) {
	bid := &cadtypes.Bid{
		Price:            b.Price,
		ContributionRate: b.ContributionRate,
	}
	if b.Timestamp != "" {
		ts, err := strconv.ParseInt(b.Timestamp, 10, 64)
		if err != nil {
			return nil, i18n.NewError(ctx, i18n.MsgSubgraphBadRecord, parcelID, err)
		}
		bid.Timestamp = ts
	}
	return bid, nil
}
