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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroid(t *testing.T) {
	b := &BoundingBox{West: -73.0, South: 40.0, East: -72.0, North: 41.0}
	c := b.Centroid()
	assert.InDelta(t, -72.5, c.Lon, 1e-9)
	assert.InDelta(t, 40.5, c.Lat, 1e-9)
}

func TestCentroidDegenerate(t *testing.T) {
	b := &BoundingBox{West: 1.0, South: 2.0, East: 1.0, North: 2.0}
	c := b.Centroid()
	assert.Equal(t, GeoPoint{Lon: 1.0, Lat: 2.0}, c)
}

func TestPolygonClosedRing(t *testing.T) {
	b := &BoundingBox{West: 0, South: 0, East: 2, North: 1}
	ring := b.Polygon()
	assert.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[4])
}
