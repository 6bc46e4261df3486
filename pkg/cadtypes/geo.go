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

// GeoPoint is a WGS84 coordinate pair
type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// BoundingBox is the geographic extent of a parcel, in west/south/east/north order
type BoundingBox struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// Polygon returns the closed ring of the bounding box, anticlockwise from the
// south-west corner
func (b *BoundingBox) Polygon() []GeoPoint {
	return []GeoPoint{
		{Lon: b.West, Lat: b.South},
		{Lon: b.East, Lat: b.South},
		{Lon: b.East, Lat: b.North},
		{Lon: b.West, Lat: b.North},
		{Lon: b.West, Lat: b.South},
	}
}

// Centroid computes the planar centroid of the bounding box polygon.
// Parcels are small enough that a planar approximation is sufficient
// for map centering.
func (b *BoundingBox) Centroid() GeoPoint {
	ring := b.Polygon()
	var area, cx, cy float64
	for i := 0; i < len(ring)-1; i++ {
		p0 := ring[i]
		p1 := ring[i+1]
		cross := p0.Lon*p1.Lat - p1.Lon*p0.Lat
		area += cross
		cx += (p0.Lon + p1.Lon) * cross
		cy += (p0.Lat + p1.Lat) * cross
	}
	if area == 0 {
		// Degenerate box collapses to a point
		return GeoPoint{Lon: b.West, Lat: b.South}
	}
	area /= 2
	return GeoPoint{
		Lon: cx / (6 * area),
		Lat: cy / (6 * area),
	}
}
