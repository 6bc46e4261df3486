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

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestExpand(t *testing.T) {
	str := Expand(context.Background(), MsgConfigFailed, "pop")
	assert.Equal(t, "Failed to read config: pop", str)
}

func TestExpandWithCode(t *testing.T) {
	str := ExpandWithCode(context.Background(), MsgConfigFailed, "pop")
	assert.Equal(t, "CD10101: Failed to read config: pop", str)
}

func TestExpandWithLangOnContext(t *testing.T) {
	ctx := WithLang(context.Background(), language.AmericanEnglish)
	str := Expand(ctx, MsgConfigFailed, "pop")
	assert.Equal(t, "Failed to read config: pop", str)
}

func TestNewError(t *testing.T) {
	err := NewError(context.Background(), MsgUnknownParcel, "0x1")
	assert.Regexp(t, "CD10115", err)
}

func TestWrapError(t *testing.T) {
	err := WrapError(context.Background(), fmt.Errorf("pop"), MsgConfigFailed, "pop")
	assert.Regexp(t, "CD10101", err)
	assert.Regexp(t, "pop", err)
}

func TestUniqueMessageIDs(t *testing.T) {
	seen := make(map[MessageKey]bool)
	for _, m := range enTranslations {
		assert.False(t, seen[m.msgid], "duplicate message id %s", m.msgid)
		seen[m.msgid] = true
	}
}
