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

package model

import "github.com/privara/hidsd/pkg/store"

// Ack acknowledges an accepted write.
type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SnapshotAck reports a recorded process snapshot.
type SnapshotAck struct {
	Status  string `json:"status"`
	BatchID string `json:"batch_id"`
	Rows    int    `json:"rows"`
}

// LogsResponse carries recent activity log lines.
type LogsResponse struct {
	Logs  []string `json:"logs"`
	Count int      `json:"count"`
}

// PurgeResponse reports how many log artifacts were removed.
type PurgeResponse struct {
	Status  string `json:"status"`
	Deleted int    `json:"deleted"`
}

// HistoryResponse carries stored metric rows, most recent first.
type HistoryResponse struct {
	History []store.MetricRow `json:"history"`
	Count   int               `json:"count"`
}
