package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"telemetrycap/internal/global"
)

// Loads JSON config from file
func LoadConfig(path string) (conf global.CaptureConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %v", err)
		return
	}

	err = json.Unmarshal(configFile, &conf)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %v", path, err)
		return
	}

	return
}
