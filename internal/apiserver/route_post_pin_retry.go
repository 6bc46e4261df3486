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

var postPinRetry = &route{
	name:   "postPinRetry",
	method: http.MethodPost,
	path:   "pins/{streamId}/{cid}/retry",
	jsonHandler: func(r *apiRequest) (interface{}, int, error) {
		err := r.or.RetryPin(r.ctx, r.pp["streamId"], r.pp["cid"])
		if err != nil {
			if matchesError(err, i18n.MsgPinningUnavailable) {
				return nil, http.StatusServiceUnavailable, err
			}
			return nil, http.StatusInternalServerError, err
		}
		return nil, http.StatusAccepted, nil
	},
}
