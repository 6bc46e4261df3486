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
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/restclient"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

var utConfPrefix = config.NewPluginConfig("subgraph_unit_tests")

func resetConf() {
	config.Reset()
	s := &Subgraph{}
	s.InitPrefix(utConfPrefix)
}

func newTestSubgraph(t *testing.T) (*Subgraph, func()) {
	s := &Subgraph{}

	mockedClient := &http.Client{}
	httpmock.ActivateNonDefault(mockedClient)

	resetConf()
	utConfPrefix.Set(restclient.HTTPConfigURL, "http://localhost:8000/graphql")
	utConfPrefix.Set(restclient.HTTPCustomClient, mockedClient)
	utConfPrefix.Set(SubgraphConfBackoffInitialDelay, "1ms")
	utConfPrefix.Set(SubgraphConfBackoffMaxDelay, "2ms")

	err := s.Init(context.Background(), utConfPrefix)
	assert.NoError(t, err)

	return s, httpmock.DeactivateAndReset
}

func sampleParcel(id, block string) map[string]interface{} {
	return map[string]interface{}{
		"id":             id,
		"createdAtBlock": block,
		"bboxNorth":      51.51,
		"bboxSouth":      51.50,
		"bboxEast":       -0.11,
		"bboxWest":       -0.12,
		"licenseOwner":   "0xowner1",
		"licenseAddress": "0xlicense1",
		"currentBid": map[string]interface{}{
			"price":            "100000000000000000",
			"contributionRate": "317097919837",
			"timestamp":        "1650000000",
		},
		"pendingBid": nil,
	}
}

func TestInitMissingURL(t *testing.T) {
	s := &Subgraph{}
	resetConf()
	err := s.Init(context.Background(), utConfPrefix)
	assert.Regexp(t, "CD10108", err)
}

func TestInit(t *testing.T) {
	s, done := newTestSubgraph(t)
	defer done()
	assert.Equal(t, "subgraph", s.Name())
	assert.NotNil(t, s.Capabilities())
}

func TestGetParcels(t *testing.T) {
	s, done := newTestSubgraph(t)
	defer done()

	parcel := sampleParcel("0x1", "14288421")
	parcel["pendingBid"] = map[string]interface{}{
		"price":            "200000000000000000",
		"contributionRate": "634195839674",
		"timestamp":        "1650001000",
	}

	httpmock.RegisterResponder("POST", "http://localhost:8000/graphql",
		func(req *http.Request) (*http.Response, error) {
			var body graphQLRequest
			err := json.NewDecoder(req.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Regexp(t, "geoWebParcels", body.Query)
			assert.Equal(t, float64(25), body.Variables["first"]) // default page size
			assert.Equal(t, float64(50), body.Variables["skip"])
			return httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
				"data": map[string]interface{}{
					"geoWebParcels": []interface{}{parcel},
				},
			})(req)
		})

	records, err := s.GetParcels(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "0x1", records[0].ID)
	assert.Equal(t, uint64(14288421), records[0].CreationBlock)
	assert.Equal(t, 51.51, records[0].BBox.North)
	assert.Equal(t, -0.12, records[0].BBox.West)
	assert.Equal(t, "0xowner1", records[0].Owner)
	assert.Equal(t, "0xlicense1", records[0].LicenseAddress)
	assert.Equal(t, "100000000000000000", records[0].CurrentBid.Price.String())
	assert.Equal(t, int64(1650000000), records[0].CurrentBid.Timestamp)
	assert.NotNil(t, records[0].PendingBid)
	assert.Equal(t, "634195839674", records[0].PendingBid.ContributionRate.String())
}

func TestGetParcelsRetriesThenSucceeds(t *testing.T) {
	s, done := newTestSubgraph(t)
	defer done()

	attempts := 0
	httpmock.RegisterResponder("POST", "http://localhost:8000/graphql",
		func(req *http.Request) (*http.Response, error) {
			attempts++
			if attempts < 2 {
				return httpmock.NewStringResponse(500, "pop"), nil
			}
			return httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
				"data": map[string]interface{}{
					"geoWebParcels": []interface{}{},
				},
			})(req)
		})

	records, err := s.GetParcels(context.Background(), 0)
	assert.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 2, attempts)
}

func TestGetParcelsExhaustsRetries(t *testing.T) {
	s, done := newTestSubgraph(t)
	defer done()

	httpmock.RegisterResponder("POST", "http://localhost:8000/graphql",
		httpmock.NewErrorResponder(fmt.Errorf("pop")))

	_, err := s.GetParcels(context.Background(), 0)
	assert.Regexp(t, "CD10112", err)
	assert.Equal(t, 3, httpmock.GetTotalCallCount())
}

func TestGetParcelsQueryErrors(t *testing.T) {
	s, done := newTestSubgraph(t)
	defer done()

	httpmock.RegisterResponder("POST", "http://localhost:8000/graphql",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"errors": []interface{}{
				map[string]interface{}{"message": "field missing"},
			},
		}))

	_, err := s.GetParcels(context.Background(), 0)
	assert.Regexp(t, "CD10124.*field missing", err)
}

func TestGetParcelsBadBlock(t *testing.T) {
	s, done := newTestSubgraph(t)
	defer done()

	httpmock.RegisterResponder("POST", "http://localhost:8000/graphql",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"data": map[string]interface{}{
				"geoWebParcels": []interface{}{sampleParcel("0x1", "!wrong")},
			},
		}))

	_, err := s.GetParcels(context.Background(), 0)
	assert.Regexp(t, "CD10123.*0x1", err)
}

func TestGetParcelsBadTimestamp(t *testing.T) {
	s, done := newTestSubgraph(t)
	defer done()

	parcel := sampleParcel("0x1", "14288421")
	parcel["currentBid"].(map[string]interface{})["timestamp"] = "!wrong"

	httpmock.RegisterResponder("POST", "http://localhost:8000/graphql",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"data": map[string]interface{}{
				"geoWebParcels": []interface{}{parcel},
			},
		}))

	_, err := s.GetParcels(context.Background(), 0)
	assert.Regexp(t, "CD10123", err)
}
