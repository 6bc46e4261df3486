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
	"testing"

	"github.com/geo-web-project/cadastred/mocks/contentresolvermocks"
	"github.com/geo-web-project/cadastred/mocks/licensingmocks"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *licensingmocks.Plugin, *contentresolvermocks.Plugin) {
	r, ml, mc := newTestResolver(t)
	return NewCoordinator(context.Background(), r), ml, mc
}

func mockHappyPath(ml *licensingmocks.Plugin, mc *contentresolvermocks.Plugin) {
	ml.On("IsPayerBidActive", mock.Anything, "0xlicense1").Return(true, nil)
	mc.On("GetContent", mock.Anything, "0xregistry", mock.Anything, "0xowner1").Return(nil, nil)
}

func TestResolveBatchEmpty(t *testing.T) {
	c, ml, mc := newTestCoordinator(t)

	page, err := c.ResolveBatch(context.Background(), 0, nil)
	assert.NoError(t, err)
	assert.Empty(t, page.Parcels)
	assert.Empty(t, page.FailedIDs)
	ml.AssertNotCalled(t, "IsPayerBidActive", mock.Anything, mock.Anything)
	mc.AssertNotCalled(t, "GetContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveBatchSortedByBlockDescending(t *testing.T) {
	c, ml, mc := newTestCoordinator(t)
	mockHappyPath(ml, mc)

	page, err := c.ResolveBatch(context.Background(), 0, []*cadtypes.ParcelRecord{
		testRecord("0xa", 5),
		testRecord("0xb", 9),
		testRecord("0xc", 1),
	})
	assert.NoError(t, err)
	assert.Len(t, page.Parcels, 3)
	assert.Equal(t, "0xb", page.Parcels[0].ID)
	assert.Equal(t, "0xa", page.Parcels[1].ID)
	assert.Equal(t, "0xc", page.Parcels[2].ID)
}

func TestResolveBatchTieBreakByID(t *testing.T) {
	c, ml, mc := newTestCoordinator(t)
	mockHappyPath(ml, mc)

	page, err := c.ResolveBatch(context.Background(), 0, []*cadtypes.ParcelRecord{
		testRecord("0xa", 5),
		testRecord("0xc", 5),
		testRecord("0xb", 5),
	})
	assert.NoError(t, err)
	assert.Equal(t, "0xc", page.Parcels[0].ID)
	assert.Equal(t, "0xb", page.Parcels[1].ID)
	assert.Equal(t, "0xa", page.Parcels[2].ID)
}

func TestResolveBatchDroppedRecordExcluded(t *testing.T) {
	c, ml, mc := newTestCoordinator(t)
	mockHappyPath(ml, mc)

	malformed := testRecord("0xbad", 7)
	malformed.PendingBid = pendingBid(-5)

	page, err := c.ResolveBatch(context.Background(), 0, []*cadtypes.ParcelRecord{
		testRecord("0xa", 5),
		malformed,
	})
	assert.NoError(t, err)
	assert.Len(t, page.Parcels, 1)
	assert.Equal(t, "0xa", page.Parcels[0].ID)
	// Dropped is not failed
	assert.Empty(t, page.FailedIDs)
}

func TestResolveBatchPerRecordFailureIsolated(t *testing.T) {
	c, ml, mc := newTestCoordinator(t)

	ml.On("IsPayerBidActive", mock.Anything, "0xlicense1").Return(true, nil)
	mc.On("GetContent", mock.Anything, "0xregistry", "0xa", "0xowner1").Return(nil, nil)
	mc.On("GetContent", mock.Anything, "0xregistry", "0xb", "0xowner1").Return(nil, fmt.Errorf("pop"))

	page, err := c.ResolveBatch(context.Background(), 0, []*cadtypes.ParcelRecord{
		testRecord("0xa", 5),
		testRecord("0xb", 9),
	})
	assert.NoError(t, err)
	assert.Len(t, page.Parcels, 1)
	assert.Equal(t, "0xa", page.Parcels[0].ID)
	assert.Equal(t, []string{"0xb"}, page.FailedIDs)
}

func TestResolveBatchSuperseded(t *testing.T) {
	c, ml, mc := newTestCoordinator(t)

	inFlight := make(chan struct{})
	blocked := make(chan struct{})
	slow := testRecord("0xslow", 5)
	slow.LicenseAddress = "0xslowlicense"
	ml.On("IsPayerBidActive", mock.Anything, "0xslowlicense").Run(func(args mock.Arguments) {
		close(inFlight)
		<-blocked
	}).Return(true, nil)
	mc.On("GetContent", mock.Anything, "0xregistry", "0xslow", "0xowner1").Return(nil, nil)
	mockHappyPath(ml, mc)

	firstResult := make(chan error, 1)
	go func() {
		_, err := c.ResolveBatch(context.Background(), 0, []*cadtypes.ParcelRecord{slow})
		firstResult <- err
	}()
	<-inFlight

	// The re-invocation supersedes the outstanding batch
	page, err := c.ResolveBatch(context.Background(), 0, []*cadtypes.ParcelRecord{testRecord("0xa", 9)})
	assert.NoError(t, err)
	assert.Len(t, page.Parcels, 1)

	close(blocked)
	assert.Regexp(t, "CD10114", <-firstResult)
}

func TestResolveBatchContextCanceled(t *testing.T) {
	c, ml, mc := newTestCoordinator(t)

	inFlight := make(chan struct{})
	blocked := make(chan struct{})
	ml.On("IsPayerBidActive", mock.Anything, "0xlicense1").Run(func(args mock.Arguments) {
		close(inFlight)
		<-blocked
	}).Return(true, nil)
	mc.On("GetContent", mock.Anything, "0xregistry", "0xa", "0xowner1").Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		_, err := c.ResolveBatch(ctx, 0, []*cadtypes.ParcelRecord{testRecord("0xa", 5)})
		result <- err
	}()
	<-inFlight
	cancel()
	close(blocked)
	assert.Regexp(t, "CD10107", <-result)
}

func TestRefetchFlag(t *testing.T) {
	c, _, _ := newTestCoordinator(t)

	assert.False(t, c.RefetchRequested())
	c.RequestRefetch()
	assert.True(t, c.RefetchRequested())
	// Still set until the caller clears it
	assert.True(t, c.RefetchRequested())
	c.ClearRefetch()
	assert.False(t, c.RefetchRequested())
}
