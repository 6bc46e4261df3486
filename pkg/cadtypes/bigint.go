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
	"context"
	"encoding/json"
	"math/big"

	"github.com/geo-web-project/cadastred/internal/i18n"
)

// BigInt is a wrapper on a Go big.Int that standardizes JSON serialization,
// used for prices and contribution rates quoted in wei
type BigInt big.Int

func NewBigInt(x int64) *BigInt {
	return (*BigInt)(big.NewInt(x))
}

func (i BigInt) MarshalText() ([]byte, error) {
	// Represent as base 10 string in marshalled JSON
	return []byte((*big.Int)(&i).Text(10)), nil
}

func (i *BigInt) UnmarshalJSON(b []byte) error {
	var val interface{}
	if err := json.Unmarshal(b, &val); err != nil {
		return i18n.WrapError(context.Background(), err, i18n.MsgBigIntParseFailed, b)
	}
	switch val := val.(type) {
	case string:
		if _, ok := i.Int().SetString(val, 0); !ok {
			return i18n.NewError(context.Background(), i18n.MsgBigIntParseFailed, b)
		}
		return nil
	case float64:
		i.Int().SetInt64(int64(val))
		return nil
	default:
		return i18n.NewError(context.Background(), i18n.MsgBigIntParseFailed, b)
	}
}

func (i *BigInt) Int() *big.Int {
	return (*big.Int)(i)
}

// Sign returns -1, 0 or 1 depending on the sign of the underlying integer.
// A nil BigInt is treated as zero.
func (i *BigInt) Sign() int {
	if i == nil {
		return 0
	}
	return (*big.Int)(i).Sign()
}

func (i *BigInt) String() string {
	if i == nil {
		return "0"
	}
	return (*big.Int)(i).Text(10)
}
