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
	"sync"

	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/pkg/cadtypes"
	ws "github.com/gorilla/websocket"
)

const sendBufferSize = 16

type webSocketConnection struct {
	id      string
	ctx     context.Context
	server  *webSocketServer
	conn    *ws.Conn
	mux     sync.Mutex
	closed  bool
	topics  map[string]bool
	send    chan interface{}
	closing chan struct{}
}

type webSocketCommandMessage struct {
	Type    string `json:"type,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message,omitempty"`
}

func newConnection(server *webSocketServer, conn *ws.Conn) *webSocketConnection {
	id := cadtypes.ShortID()
	wsc := &webSocketConnection{
		id:      id,
		server:  server,
		conn:    conn,
		topics:  make(map[string]bool),
		send:    make(chan interface{}, sendBufferSize),
		closing: make(chan struct{}),
		ctx:     log.WithLogField(server.ctx, "ws", id),
	}
	go wsc.listen()
	go wsc.sender()
	return wsc
}

func (c *webSocketConnection) close() {
	c.mux.Lock()
	if !c.closed {
		c.closed = true
		c.conn.Close()
		close(c.closing)
	}
	c.mux.Unlock()

	c.server.connectionClosed(c)
	log.L(c.ctx).Infof("WS/%s: Disconnected", c.id)
}

// dispatch queues one event for the connection if it is listening on the
// topic. Never blocks the broadcaster.
func (c *webSocketConnection) dispatch(topic string, payload interface{}) {
	c.mux.Lock()
	listening := c.topics[topic]
	c.mux.Unlock()
	if !listening {
		return
	}
	select {
	case c.send <- payload:
	default:
		log.L(c.ctx).Warnf("Dropped event on topic '%s': client not keeping up", topic)
	}
}

func (c *webSocketConnection) sender() {
	defer c.close()
	for {
		select {
		case payload := <-c.send:
			if err := c.conn.WriteJSON(payload); err != nil {
				log.L(c.ctx).Infof("Websocket send failed: %s", err)
				return
			}
		case <-c.closing:
			log.L(c.ctx).Infof("Websocket closing")
			return
		}
	}
}

func (c *webSocketConnection) setListening(topic string, listening bool) {
	c.mux.Lock()
	if listening {
		c.topics[topic] = true
	} else {
		delete(c.topics, topic)
	}
	c.mux.Unlock()
}

func (c *webSocketConnection) listen() {
	defer c.close()
	log.L(c.ctx).Infof("Websocket connected")
	for {
		var msg webSocketCommandMessage
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			log.L(c.ctx).Infof("Websocket error: %s", err)
			return
		}
		log.L(c.ctx).Debugf("Websocket received: %+v", msg)

		switch msg.Type {
		case "listen":
			c.setListening(msg.Topic, true)
		case "unlisten":
			c.setListening(msg.Topic, false)
		case "error":
			log.L(c.ctx).Errorf("%s", i18n.NewError(c.ctx, i18n.MsgWebsocketClientError, msg.Message))
		default:
			log.L(c.ctx).Errorf("Unexpected message type: %+v", msg)
		}
	}
}
