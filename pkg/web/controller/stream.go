// Copyright 2025 The Privara Authors.
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

package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/privara/hidsd/pkg/ingest"
	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/web/model"
)

var upgrader = websocket.Upgrader{
	// The monitor connects from a desktop process, not a browser page.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamUpdates accepts pushed payloads over a persistent websocket,
// one payload per frame. Each frame goes through the same validation
// as the POST endpoint; a rejected frame gets an error frame back and
// the connection stays open.
func (c *SystemController) StreamUpdates() {
	conn, err := upgrader.Upgrade(c.ctx.Writer, c.ctx.Request, nil)
	if err != nil {
		// Upgrade already wrote its own HTTP error.
		log.Warn("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var payload ingest.Payload
		if err := conn.ReadJSON(&payload); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("monitor stream closed unexpectedly: %v", err)
			}
			return
		}

		if err := ingestor.Accept(c.ctx.Request.Context(), &payload); err != nil {
			resp := model.ErrorResponse{Code: model.ErrorCodeStorageError, Message: err.Error()}
			var verr *ingest.ValidationError
			if errors.As(err, &verr) {
				resp = model.ErrorResponse{Code: model.ErrorCodeInvalidPayload, Message: verr.Error()}
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(model.Ack{Status: "ok"}); err != nil {
			return
		}
	}
}
