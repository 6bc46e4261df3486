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

package apiserver

import (
	"net/http"

	"github.com/geo-web-project/cadastred/pkg/cadtypes"
)

type pinStatusOutput struct {
	Identifier string            `json:"identifier"`
	State      cadtypes.PinState `json:"state"`
}

var getPin = &route{
	name:   "getPin",
	method: http.MethodGet,
	path:   "pins/{streamId}/{cid}",
	jsonHandler: func(r *apiRequest) (interface{}, int, error) {
		item := cadtypes.NewPinnableItem(r.pp["streamId"], r.pp["cid"])
		state := r.or.PinStatus(r.ctx, item.StreamID, item.CID)
		return &pinStatusOutput{
			Identifier: item.Identifier(),
			State:      state,
		}, http.StatusOK, nil
	},
}
