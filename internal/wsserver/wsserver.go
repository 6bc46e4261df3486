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

package wsserver

import (
	"context"
	"net/http"
	"sync"

	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	"github.com/gorilla/websocket"
)

// TopicPins is the topic carrying pin state transition events
const TopicPins = "pins"

// PinStateEvent is broadcast to listeners on the pins topic whenever a
// tracked item transitions state
type PinStateEvent struct {
	Type       string            `json:"type"`
	Identifier string            `json:"identifier"`
	State      cadtypes.PinState `json:"state"`
}

// WebSocketServer fans events out to connected clients, by topic. Clients
// subscribe with a listen command after connecting.
type WebSocketServer interface {
	Broadcast(topic string, payload interface{})
	Handler() http.HandlerFunc
	Close()
}

type webSocketServer struct {
	ctx         context.Context
	mux         sync.Mutex
	upgrader    *websocket.Upgrader
	connections map[string]*webSocketConnection
}

// NewWebSocketServer create a new server with a simplified interface
func NewWebSocketServer(ctx context.Context) WebSocketServer {
	return &webSocketServer{
		ctx:         ctx,
		connections: make(map[string]*webSocketConnection),
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *webSocketServer) handler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.L(s.ctx).Errorf("WebSocket upgrade failed: %s", err)
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	c := newConnection(s, conn)
	s.connections[c.id] = c
}

func (s *webSocketServer) connectionClosed(c *webSocketConnection) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.connections, c.id)
}

func (s *webSocketServer) Handler() http.HandlerFunc {
	return s.handler
}

// Broadcast delivers one event to every connection listening on the topic.
// Delivery is best effort - a client that cannot keep up has the event
// dropped rather than stalling the broadcaster.
func (s *webSocketServer) Broadcast(topic string, payload interface{}) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, c := range s.connections {
		c.dispatch(topic, payload)
	}
}

func (s *webSocketServer) Close() {
	s.mux.Lock()
	connections := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		connections = append(connections, c)
	}
	s.mux.Unlock()
	for _, c := range connections {
		c.close()
	}
}
