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

package ethconnect

// ABIArgumentMarshaling is abi.ArgumentMarshaling
type ABIArgumentMarshaling struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	InternalType string `json:"internalType,omitempty"`
}

// ABIElementMarshaling is the serialized representation of a method or event in an ABI
type ABIElementMarshaling struct {
	Type            string                  `json:"type,omitempty"`
	Name            string                  `json:"name,omitempty"`
	StateMutability string                  `json:"stateMutability,omitempty"`
	Inputs          []ABIArgumentMarshaling `json:"inputs"`
	Outputs         []ABIArgumentMarshaling `json:"outputs"`
}

// View functions of the license diamond driving the parcel lifecycle

var shouldBidPeriodEndEarlyABI = ABIElementMarshaling{
	Name:            "shouldBidPeriodEndEarly",
	Type:            "function",
	StateMutability: "view",
	Inputs:          []ABIArgumentMarshaling{},
	Outputs: []ABIArgumentMarshaling{
		{
			InternalType: "bool",
			Type:         "bool",
		},
	},
}

var isPayerBidActiveABI = ABIElementMarshaling{
	Name:            "isPayerBidActive",
	Type:            "function",
	StateMutability: "view",
	Inputs:          []ABIArgumentMarshaling{},
	Outputs: []ABIArgumentMarshaling{
		{
			InternalType: "bool",
			Type:         "bool",
		},
	},
}
