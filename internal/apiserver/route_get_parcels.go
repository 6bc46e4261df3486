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
	"strconv"

	"github.com/geo-web-project/cadastred/internal/i18n"
)

var getParcels = &route{
	name:   "getParcels",
	method: http.MethodGet,
	path:   "parcels",
	jsonHandler: func(r *apiRequest) (interface{}, int, error) {
		skip := 0
		if skipStr := r.req.URL.Query().Get("skip"); skipStr != "" {
			var err error
			skip, err = strconv.Atoi(skipStr)
			if err != nil || skip < 0 {
				return nil, http.StatusBadRequest, i18n.NewError(r.ctx, i18n.MsgInvalidSkipParam, skipStr)
			}
		}
		page, err := r.or.GetParcels(r.ctx, skip)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return page, http.StatusOK, nil
	},
}
