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

// ApiAccessTokenHeader carries the optional API access token.
const ApiAccessTokenHeader = "X-Privara-Access-Token"

type ErrorCode string

const (
	ErrorCodeInvalidPayload ErrorCode = "InvalidPayload"
	ErrorCodeRuntimeError   ErrorCode = "RuntimeError"
	ErrorCodeStorageError   ErrorCode = "StorageError"
	ErrorCodeNotFound       ErrorCode = "NotFound"
)

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message,omitempty"`
}
