// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a [Config] overlay from the JSON file at jsonFilePath.
// The file uses the same shape as the Config struct's json tags, e.g.:
//
//	{
//	  "app": {"log_level": "debug", "kdf_iterations": 100000},
//	  "storage": {"data_dir": "/home/user/.finkeep"}
//	}
func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg struct {
		App     App     `json:"app"`
		Storage Storage `json:"storage"`
	}
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &Config{App: jsonCfg.App, Storage: jsonCfg.Storage}, nil
}
