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

package config

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigNotFound(t *testing.T) {
	viper.Reset()
	err := ReadConfig("")
	assert.Regexp(t, "Not Found", err.Error())
}

func TestDefaults(t *testing.T) {
	err := ReadConfig("../../test/config/cadastred.core.yaml")
	assert.NoError(t, err)

	assert.Equal(t, "info", GetString(LogLevel))
	assert.True(t, GetBool(LogColor))
	assert.Equal(t, uint(5100), GetUint(HTTPPort))
	assert.Equal(t, -1, GetInt(DebugPort))
	assert.Equal(t, []string{"*"}, GetStringSlice(CorsAllowedOrigins))
	assert.Equal(t, 10*time.Second, GetDuration(PinsProbeTimeout))
	assert.Equal(t, 25, GetInt(ParcelsPageSize))
}

func TestSpecificConfigFileOk(t *testing.T) {
	err := ReadConfig("../../test/config/cadastred.core.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "0x3a9e5a3e", GetString(RegistryAddress))
}

func TestSpecificConfigFileFail(t *testing.T) {
	err := ReadConfig("../../test/config/no.hope.yaml")
	assert.Error(t, err)
}

func TestAttemptToAccessRandomKey(t *testing.T) {
	assert.Panics(t, func() {
		GetString("any.key")
	})
}

func TestSetGetMap(t *testing.T) {
	defer Reset()
	Set(CorsDebug, map[string]interface{}{"some": "map"})
	assert.Equal(t, map[string]interface{}{"some": "map"}, GetStringMap(CorsDebug))
}

func TestSetGetRawInterface(t *testing.T) {
	defer Reset()
	type myType struct{ name string }
	Set(CorsDebug, &myType{name: "test"})
	v := Get(CorsDebug)
	assert.Equal(t, myType{name: "test"}, *(v.(*myType)))
}

func TestPluginConfig(t *testing.T) {
	pic := NewPluginConfig("my")
	pic.AddKnownKey("special.config", 12345)
	assert.Equal(t, 12345, pic.GetInt("special.config"))
}

func TestPluginConfigArrayInit(t *testing.T) {
	pic := NewPluginConfig("my").SubPrefix("special")
	pic.AddKnownKey("config", "val1", "val2", "val3")
	assert.Equal(t, []string{"val1", "val2", "val3"}, pic.GetStringSlice("config"))
}

func TestPluginConfigResolve(t *testing.T) {
	pic := NewPluginConfig("my")
	assert.Equal(t, "my.url", pic.Resolve("url"))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, ParseDuration("10s"))
	assert.Equal(t, 500*time.Millisecond, ParseDuration("500"))
	assert.Equal(t, time.Duration(0), ParseDuration("!not a duration"))
}

func TestUnmarshalKey(t *testing.T) {
	defer Reset()
	Reset()
	Set(CorsDebug, map[string]interface{}{"some": "map"})
	var conf struct {
		Some string `json:"some"`
	}
	err := UnmarshalKey(context.Background(), CorsDebug, &conf)
	assert.NoError(t, err)
	assert.Equal(t, "map", conf.Some)
}
