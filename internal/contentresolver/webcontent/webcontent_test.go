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

package webcontent

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/restclient"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

var utConfPrefix = config.NewPluginConfig("webcontent_unit_tests")

func resetConf() {
	config.Reset()
	w := &WebContent{}
	w.InitPrefix(utConfPrefix)
}

func newTestWebContent(t *testing.T) (*WebContent, func()) {
	w := &WebContent{}

	mockedClient := &http.Client{}
	httpmock.ActivateNonDefault(mockedClient)

	resetConf()
	utConfPrefix.Set(restclient.HTTPConfigURL, "http://localhost:9090")
	utConfPrefix.Set(restclient.HTTPCustomClient, mockedClient)

	err := w.Init(context.Background(), utConfPrefix)
	assert.NoError(t, err)

	return w, httpmock.DeactivateAndReset
}

func TestInitMissingURL(t *testing.T) {
	w := &WebContent{}
	resetConf()
	err := w.Init(context.Background(), utConfPrefix)
	assert.Regexp(t, "CD10108", err)
}

func TestInit(t *testing.T) {
	w, done := newTestWebContent(t)
	defer done()
	assert.Equal(t, "webcontent", w.Name())
	assert.NotNil(t, w.Capabilities())
}

func TestGetContentCached(t *testing.T) {
	w, done := newTestWebContent(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://localhost:9090/content/0xregistry/0x1",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "0xowner1", req.URL.Query().Get("owner"))
			return httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{"name": "Coffee Shop"})(req)
		})

	content, err := w.GetContent(context.Background(), "0xregistry", "0x1", "0xowner1")
	assert.NoError(t, err)
	assert.Equal(t, "Coffee Shop", content.Name)

	// Second lookup served from cache
	content, err = w.GetContent(context.Background(), "0xregistry", "0x1", "0xowner1")
	assert.NoError(t, err)
	assert.Equal(t, "Coffee Shop", content.Name)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestGetContentNotFound(t *testing.T) {
	w, done := newTestWebContent(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://localhost:9090/content/0xregistry/0x2",
		httpmock.NewStringResponder(404, "no content"))

	content, err := w.GetContent(context.Background(), "0xregistry", "0x2", "0xowner1")
	assert.NoError(t, err)
	assert.Nil(t, content)
}

func TestGetContentServerError(t *testing.T) {
	w, done := newTestWebContent(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://localhost:9090/content/0xregistry/0x3",
		httpmock.NewStringResponder(500, "pop"))

	_, err := w.GetContent(context.Background(), "0xregistry", "0x3", "0xowner1")
	assert.Regexp(t, "CD10111", err)
}

func TestGetContentTransportError(t *testing.T) {
	w, done := newTestWebContent(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://localhost:9090/content/0xregistry/0x4",
		httpmock.NewErrorResponder(fmt.Errorf("pop")))

	_, err := w.GetContent(context.Background(), "0xregistry", "0x4", "0xowner1")
	assert.Regexp(t, "CD10111", err)
}
