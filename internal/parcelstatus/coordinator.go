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
	"sort"
	"sync"

	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
)

// Coordinator fans the resolver out over a page of records, waits for every
// record to settle, and assembles a deterministically ordered page.
//
// A re-invocation while a batch is outstanding cancels the outstanding
// batch. The superseded invocation returns an error and its results are
// discarded, never merged into the newer page.
type Coordinator struct {
	ctx      context.Context
	resolver *Resolver

	batchMux    sync.Mutex
	generation  int
	cancelBatch context.CancelFunc

	refetchMux sync.Mutex
	refetch    bool
}

func NewCoordinator(ctx context.Context, resolver *Resolver) *Coordinator {
	return &Coordinator{
		ctx:      log.WithLogField(ctx, "role", "batchcoordinator"),
		resolver: resolver,
	}
}

type recordResult struct {
	record *cadtypes.ParcelRecord
	parcel *cadtypes.ResolvedParcel
	err    error
}

// ResolveBatch resolves one page of records concurrently. An empty input
// short-circuits to an empty page with no collaborator calls. Per-record
// failures are isolated: failed records are reported by id alongside the
// successfully resolved parcels.
func (c *Coordinator) ResolveBatch(ctx context.Context, skip int, records []*cadtypes.ParcelRecord) (*cadtypes.ParcelPage, error) {
	if len(records) == 0 {
		return &cadtypes.ParcelPage{Parcels: []*cadtypes.ResolvedParcel{}, Skip: skip}, nil
	}

	batchCtx, cancel := context.WithCancel(ctx)
	c.batchMux.Lock()
	c.generation++
	generation := c.generation
	if c.cancelBatch != nil {
		log.L(ctx).Debugf("Superseding outstanding batch")
		c.cancelBatch()
	}
	c.cancelBatch = cancel
	c.batchMux.Unlock()

	results := make([]recordResult, len(records))
	var wg sync.WaitGroup
	for idx, record := range records {
		wg.Add(1)
		go func(idx int, record *cadtypes.ParcelRecord) {
			defer wg.Done()
			parcel, err := c.resolver.Resolve(batchCtx, record)
			results[idx] = recordResult{record, parcel, err}
		}(idx, record)
	}
	wg.Wait()

	superseded := batchCtx.Err() != nil
	c.batchMux.Lock()
	if c.generation == generation {
		c.cancelBatch = nil
	}
	c.batchMux.Unlock()
	cancel()
	if superseded {
		if ctx.Err() != nil {
			return nil, i18n.NewError(ctx, i18n.MsgContextCanceled)
		}
		return nil, i18n.NewError(ctx, i18n.MsgBatchSuperseded)
	}

	page := &cadtypes.ParcelPage{Parcels: []*cadtypes.ResolvedParcel{}, Skip: skip}
	for _, res := range results {
		switch {
		case res.err != nil:
			log.L(ctx).Warnf("Resolution of parcel %s failed: %s", res.record.ID, res.err)
			page.FailedIDs = append(page.FailedIDs, res.record.ID)
		case res.parcel != nil:
			page.Parcels = append(page.Parcels, res.parcel)
		}
	}

	// Newest parcels first. The creation block alone is not a total order,
	// so ties fall back to the id for a stable page.
	sort.Slice(page.Parcels, func(i, j int) bool {
		if page.Parcels[i].CreationBlock != page.Parcels[j].CreationBlock {
			return page.Parcels[i].CreationBlock > page.Parcels[j].CreationBlock
		}
		return page.Parcels[i].ID > page.Parcels[j].ID
	})
	return page, nil
}

// RequestRefetch asks for the next page resolution to restart from offset
// zero, such as after a successful on-chain claim
func (c *Coordinator) RequestRefetch() {
	c.refetchMux.Lock()
	c.refetch = true
	c.refetchMux.Unlock()
}

// RefetchRequested observes the refetch flag. The caller must clear the
// flag once acted upon, or every subsequent page returns to offset zero.
func (c *Coordinator) RefetchRequested() bool {
	c.refetchMux.Lock()
	defer c.refetchMux.Unlock()
	return c.refetch
}

// ClearRefetch resets the refetch flag
func (c *Coordinator) ClearRefetch() {
	c.refetchMux.Lock()
	c.refetch = false
	c.refetchMux.Unlock()
}
