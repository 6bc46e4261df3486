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

package cadtypes

// ParcelStatus is the derived lifecycle status of a land parcel license
type ParcelStatus string

const (
	// ParcelStatusValid the license is held and paid for, with no pending bid
	ParcelStatusValid ParcelStatus = "valid"
	// ParcelStatusOutstandingBid a pending bid with a positive contribution rate is waiting on the licensee
	ParcelStatusOutstandingBid ParcelStatus = "outstanding-bid"
	// ParcelStatusNeedsTransfer the pending bid's waiting period has elapsed (or the contract ended it early) and the license must transfer
	ParcelStatusNeedsTransfer ParcelStatus = "needs-transfer"
	// ParcelStatusInForeclosure the licensee's payment stream is no longer active
	ParcelStatusInForeclosure ParcelStatus = "in-foreclosure"
)

// Bid is a current or pending bid against a parcel license
type Bid struct {
	Price            *BigInt `json:"price"`
	ContributionRate *BigInt `json:"contributionRate"`
	Timestamp        int64   `json:"timestamp,omitempty"`
}

// ParcelRecord is a raw on-chain parcel record, as supplied by the record
// source. It is immutable and owned by the caller.
type ParcelRecord struct {
	ID             string      `json:"id"`
	CreationBlock  uint64      `json:"creationBlock"`
	BBox           BoundingBox `json:"bbox"`
	Owner          string      `json:"owner"`
	LicenseAddress string      `json:"licenseAddress"`
	CurrentBid     Bid         `json:"currentBid"`
	PendingBid     *Bid        `json:"pendingBid,omitempty"`
}

// ResolvedParcel is the output of the status resolution pipeline for one record
type ResolvedParcel struct {
	ID            string       `json:"id"`
	CreationBlock uint64       `json:"creationBlock"`
	Status        ParcelStatus `json:"status"`
	Name          string       `json:"name"`
	Price         *BigInt      `json:"price"`
	Center        GeoPoint     `json:"center"`
}

// ParcelPage is one resolved page of parcels, with any per-record
// resolution failures reported alongside the successes
type ParcelPage struct {
	Parcels   []*ResolvedParcel `json:"parcels"`
	FailedIDs []string          `json:"failedIds,omitempty"`
	Skip      int               `json:"skip"`
}

// ParcelSelection is the payload handed to the map UI when a parcel is selected
type ParcelSelection struct {
	ID     string   `json:"id"`
	Center GeoPoint `json:"center"`
}

// ParcelContent is the off-chain content document resolved for a parcel
type ParcelContent struct {
	Name string `json:"name,omitempty"`
}
