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

package i18n

var (
	MsgConfigFailed            = ffm("CD10101", "Failed to read config: %s")
	MsgAPIServerStartFailed    = ffm("CD10102", "Unable to start listener on %s: %s")
	MsgTLSConfigFailed         = ffm("CD10103", "Failed to initialize TLS configuration")
	MsgInvalidCAFile           = ffm("CD10104", "Invalid CA certificates file")
	MsgResponseMarshalError    = ffm("CD10105", "Failed to serialize response data")
	Msg404NotFound             = ffm("CD10106", "Not found")
	MsgContextCanceled         = ffm("CD10107", "Context canceled")
	MsgMissingPluginConfig     = ffm("CD10108", "Missing configuration '%s' for %s")
	MsgIPFSRESTErr             = ffm("CD10109", "Error from IPFS: %s")
	MsgEthconnectRESTErr       = ffm("CD10110", "Error from ethconnect: %s")
	MsgContentRESTErr          = ffm("CD10111", "Error from content resolver: %s")
	MsgSubgraphRESTErr         = ffm("CD10112", "Error from registry subgraph: %s")
	MsgInvalidContractOutput   = ffm("CD10113", "Unexpected output from contract query of %s: %s")
	MsgBatchSuperseded         = ffm("CD10114", "Parcel resolution superseded by a newer request")
	MsgUnknownParcel           = ffm("CD10115", "Unknown parcel '%s'")
	MsgPinningUnavailable      = ffm("CD10116", "Pinning service is not available")
	MsgInvalidSkipParam        = ffm("CD10117", "Invalid 'skip' query parameter '%s'")
	MsgPinPreloadFailed        = ffm("CD10118", "Preload of content '%s' failed")
	MsgWebsocketClientError    = ffm("CD10119", "Error received from WebSocket client: %s")
	MsgInvalidContributionRate = ffm("CD10120", "Pending bid on parcel '%s' has an unrecognized contribution rate")
	MsgAPIRequestTimeout       = ffm("CD10121", "The request with id '%s' timed out after %.2fms")
	MsgBigIntParseFailed       = ffm("CD10122", "Failed to parse JSON value '%s' into BigInt")
	MsgSubgraphBadRecord       = ffm("CD10123", "Invalid parcel record '%s' from registry subgraph: %s")
	MsgSubgraphQueryErrors     = ffm("CD10124", "Registry subgraph returned query errors: %s")
	MsgInvalidOutputOption     = ffm("CD10125", "Invalid output option '%s'")
)
