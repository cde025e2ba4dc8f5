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

package flag

import "path/filepath"

var (
	// ServerPort controls the HTTP listener port.
	ServerPort int

	// ServerLogLevel controls the server log verbosity.
	ServerLogLevel int

	// ServerAccessToken guards API entrypoints when set.
	ServerAccessToken string

	// DataDir is the directory holding the history database,
	// the config file and the activity log directory.
	DataDir string
)

// DBPath is the history store file inside DataDir.
func DBPath() string {
	return filepath.Join(DataDir, "privara.db")
}

// ConfigPath is the persisted configuration file inside DataDir.
func ConfigPath() string {
	return filepath.Join(DataDir, "config.json")
}

// LogDir is the activity log directory inside DataDir.
func LogDir() string {
	return filepath.Join(DataDir, "logs")
}
