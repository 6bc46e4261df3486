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

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/internal/restclient"
	"github.com/geo-web-project/cadastred/pkg/licensing"
	"github.com/go-resty/resty/v2"
)

// Ethconnect queries license diamond view functions through an
// ethconnect-style REST gateway to the chain
type Ethconnect struct {
	ctx          context.Context
	capabilities *licensing.Capabilities
	client       *resty.Client
}

type queryRequest struct {
	Headers queryRequestHeaders  `json:"headers"`
	To      string               `json:"to"`
	Method  ABIElementMarshaling `json:"method"`
	Params  []interface{}        `json:"params"`
}

type queryRequestHeaders struct {
	Type string `json:"type"`
}

type queryOutput struct {
	Output interface{} `json:"output"`
}

type ethError struct {
	Error string `json:"error,omitempty"`
}

func (e *Ethconnect) Name() string {
	return "ethconnect"
}

func (e *Ethconnect) Init(ctx context.Context, prefix config.Prefix) error {
	e.ctx = log.WithLogField(ctx, "licensing", "ethconnect")
	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(restclient.HTTPConfigURL), "ethconnect")
	}
	e.client = restclient.New(e.ctx, prefix)
	e.capabilities = &licensing.Capabilities{}
	return nil
}

func (e *Ethconnect) Capabilities() *licensing.Capabilities {
	return e.capabilities
}

func (e *Ethconnect) ShouldBidPeriodEndEarly(ctx context.Context, licenseAddress string) (bool, error) {
	return e.queryBoolMethod(ctx, licenseAddress, shouldBidPeriodEndEarlyABI)
}

func (e *Ethconnect) IsPayerBidActive(ctx context.Context, licenseAddress string) (bool, error) {
	return e.queryBoolMethod(ctx, licenseAddress, isPayerBidActiveABI)
}

func (e *Ethconnect) queryBoolMethod(ctx context.Context, address string, method ABIElementMarshaling) (bool, error) {
	body := queryRequest{
		Headers: queryRequestHeaders{Type: "Query"},
		To:      address,
		Method:  method,
		Params:  []interface{}{},
	}
	var resErr ethError
	res, err := e.client.R().
		SetContext(ctx).
		SetBody(body).
		SetError(&resErr).
		Post("/")
	if err != nil || !res.IsSuccess() {
		if resErr.Error != "" {
			return false, i18n.NewError(ctx, i18n.MsgEthconnectRESTErr, resErr.Error)
		}
		return false, restclient.WrapRestErr(ctx, res, err, i18n.MsgEthconnectRESTErr)
	}
	var output queryOutput
	if err := json.Unmarshal(res.Body(), &output); err != nil {
		return false, i18n.WrapError(ctx, err, i18n.MsgInvalidContractOutput, method.Name, res.String())
	}
	return parseBoolOutput(ctx, method.Name, output.Output)
}

// parseBoolOutput tolerates the range of encodings ethconnect uses for a
// single bool return value
func parseBoolOutput(ctx context.Context, methodName string, output interface{}) (bool, error) {
	switch v := output.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, i18n.NewError(ctx, i18n.MsgInvalidContractOutput, methodName, v)
		}
		return b, nil
	default:
		return false, i18n.NewError(ctx, i18n.MsgInvalidContractOutput, methodName, output)
	}
}
