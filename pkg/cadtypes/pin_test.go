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

func TestNormalizeCID(t *testing.T) {
	assert.Equal(t, "QmRAQfHNnknnz8S936M2yJGhhVNA6wXJ4jTRP3VXtptmmL", NormalizeCID("ipfs://QmRAQfHNnknnz8S936M2yJGhhVNA6wXJ4jTRP3VXtptmmL"))
	assert.Equal(t, "QmRAQfHNnknnz8S936M2yJGhhVNA6wXJ4jTRP3VXtptmmL", NormalizeCID("QmRAQfHNnknnz8S936M2yJGhhVNA6wXJ4jTRP3VXtptmmL"))
}

func TestPinnableItemIdentifier(t *testing.T) {
	item := NewPinnableItem("stream1", "ipfs://QmXyz")
	assert.Equal(t, "stream1-QmXyz", item.Identifier())
	assert.Equal(t, "QmXyz", item.CID)
}

func TestShortIDGen(t *testing.T) {
	assert.Regexp(t, "[a-zA-Z0-9_]{8}", ShortID())
}
