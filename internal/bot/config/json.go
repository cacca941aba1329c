package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recipebook/internal/flagx"
)

// JsonConfig is the DTO for reading a JSON configuration file. Its values
// are copied into the runtime Config after unmarshalling.
type JsonConfig struct {
	BotToken    string `json:"bot_token"`
	DatabaseDSN string `json:"database_dsn"`
	PollTimeout int    `json:"poll_timeout"`
	SendRetries int    `json:"send_retries"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flag. Without the flag nothing is loaded. An unreadable or
// invalid file is a startup error and panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.BotToken != "" {
		config.BotToken = c.BotToken
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.PollTimeout != 0 {
		config.PollTimeout = c.PollTimeout
	}
	if c.SendRetries != 0 {
		config.SendRetries = c.SendRetries
	}
}
