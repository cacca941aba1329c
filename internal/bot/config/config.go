// Package config handles configuration for the bot: defaults, an optional
// JSON file, environment variables (including a .env file), and
// command-line flags, in that order of precedence.
package config

// Config holds runtime settings for the recipe notebook bot.
//
// Fields:
//   - BotToken: Telegram Bot API token.
//   - DatabaseDSN: postgres:// / postgresql:// DSN for PostgreSQL, anything
//     else is treated as a SQLite file path.
//   - PollTimeout: long-poll timeout in seconds.
//   - SendRetries: delivery attempts per outbound message.
type Config struct {
	BotToken    string
	DatabaseDSN string
	PollTimeout int
	SendRetries int
}

// LoadDefaults populates c with development defaults. The token has no
// default and must come from the environment, a JSON file, or a flag.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "recipes.db"
	c.PollTimeout = 60
	c.SendRetries = 3
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
