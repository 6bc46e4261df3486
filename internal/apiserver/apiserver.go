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
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/internal/orchestrator"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/gorilla/mux"
)

var apiVersionPrefix = "/api/v1/"

// Server is the HTTP/WebSocket interface of the cadastre node
type Server interface {
	Serve(ctx context.Context, o orchestrator.Orchestrator) error
}

type apiServer struct {
	apiTimeout time.Duration
}

// NewAPIServer makes a new server instance
func NewAPIServer() Server {
	return &apiServer{
		apiTimeout: config.GetDuration(config.APIRequestTimeout),
	}
}

// Serve is the main entry point for the API Server
func (as *apiServer) Serve(ctx context.Context, o orchestrator.Orchestrator) error {
	httpErrChan := make(chan error)
	apiHTTPServer, err := newHTTPServer(ctx, "api", as.createMuxRouter(o), httpErrChan)
	if err != nil {
		return err
	}
	go apiHTTPServer.serveHTTP(ctx)
	return <-httpErrChan
}

// RESTError is the JSON body returned on any failed request
type RESTError struct {
	Error string `json:"error"`
}

type apiRequest struct {
	ctx context.Context
	or  orchestrator.Orchestrator
	req *http.Request
	pp  map[string]string
}

type route struct {
	name        string
	method      string
	path        string // relative to the version prefix
	jsonHandler func(r *apiRequest) (output interface{}, status int, err error)
}

func (as *apiServer) createMuxRouter(o orchestrator.Orchestrator) *mux.Router {
	r := mux.NewRouter()
	for _, route := range routes {
		r.HandleFunc(apiVersionPrefix+route.path, as.routeHandler(o, route)).Methods(route.method)
	}
	r.HandleFunc("/ws", o.WSHandler())
	r.NotFoundHandler = as.notFoundHandler()
	return r
}

func (as *apiServer) notFoundHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		as.sendJSON(ctx, res, http.StatusNotFound, &RESTError{Error: i18n.ExpandWithCode(ctx, i18n.Msg404NotFound)})
	}
}

func (as *apiServer) routeHandler(o orchestrator.Orchestrator, route *route) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		reqID := cadtypes.ShortID()
		ctx, cancel := context.WithTimeout(req.Context(), as.apiTimeout)
		defer cancel()
		l := log.L(ctx).WithField("api", reqID)
		ctx = log.WithLogger(ctx, l)
		req = req.WithContext(ctx)

		l.Infof("--> %s %s (%s)", req.Method, req.URL.Path, route.name)
		startTime := time.Now()
		output, status, err := route.jsonHandler(&apiRequest{
			ctx: ctx,
			or:  o,
			req: req,
			pp:  mux.Vars(req),
		})
		durationMS := float64(time.Since(startTime)) / float64(time.Millisecond)

		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				status = http.StatusRequestTimeout
				err = i18n.NewError(ctx, i18n.MsgAPIRequestTimeout, reqID, durationMS)
			}
			l.Infof("<-- %s %s [%d] (%.2fms): %s", req.Method, req.URL.Path, status, durationMS, err)
			as.sendJSON(ctx, res, status, &RESTError{Error: err.Error()})
			return
		}

		l.Infof("<-- %s %s [%d] (%.2fms)", req.Method, req.URL.Path, status, durationMS)
		if output == nil {
			res.WriteHeader(status)
			return
		}
		as.sendJSON(ctx, res, status, output)
	}
}

func (as *apiServer) sendJSON(ctx context.Context, res http.ResponseWriter, status int, payload interface{}) {
	resBytes, err := json.Marshal(payload)
	if err != nil {
		log.L(ctx).Errorf("Failed to serialize response: %s", err)
		status = http.StatusInternalServerError
		resBytes = []byte(`{"error":"` + i18n.ExpandWithCode(ctx, i18n.MsgResponseMarshalError) + `"}`)
	}
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_, _ = res.Write(resBytes)
}

// matchesError checks whether an error carries the code of a known message,
// so routes can map specific failures to their HTTP status
func matchesError(err error, key i18n.MessageKey) bool {
	return err != nil && strings.HasPrefix(err.Error(), string(key)+":")
}
