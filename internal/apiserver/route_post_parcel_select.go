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

	"github.com/geo-web-project/cadastred/internal/i18n"
)

var postParcelSelect = &route{
	name:   "postParcelSelect",
	method: http.MethodPost,
	path:   "parcels/{parcelId}/select",
	jsonHandler: func(r *apiRequest) (interface{}, int, error) {
		selection, err := r.or.SelectParcel(r.ctx, r.pp["parcelId"])
		if err != nil {
			if matchesError(err, i18n.MsgUnknownParcel) {
				return nil, http.StatusNotFound, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return selection, http.StatusOK, nil
	},
}
