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

import (
	"flag"
	"os"
)

const (
	dataDirEnv     = "HIDSD_DATA_DIR"
	accessTokenEnv = "HIDSD_ACCESS_TOKEN"
)

// InitFlags registers CLI flags and env overrides.
func InitFlags() {
	// Set default values
	ServerPort = 8000
	ServerLogLevel = 6
	ServerAccessToken = ""
	DataDir = "."

	// First, set default values from environment variables
	if dataDirFromEnv := os.Getenv(dataDirEnv); dataDirFromEnv != "" {
		DataDir = dataDirFromEnv
	}

	if tokenFromEnv := os.Getenv(accessTokenEnv); tokenFromEnv != "" {
		ServerAccessToken = tokenFromEnv
	}

	// Then define flags with current values as defaults
	flag.IntVar(&ServerPort, "port", ServerPort, "Server listening port (default: 8000)")
	flag.IntVar(&ServerLogLevel, "log-level", ServerLogLevel, "Server log level (3=Error, 4=Warning, 6=Info, 7=Debug, default: 6)")
	flag.StringVar(&ServerAccessToken, "access-token", ServerAccessToken, "Server access token for API authentication")
	flag.StringVar(&DataDir, "data-dir", DataDir, "Directory for database, config file and activity logs (default: current directory)")

	// Parse flags - these will override environment variables if provided
	flag.Parse()
}
