package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/recipebook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   database DSN or SQLite file path
//	-p int      long-poll timeout in seconds
//	-r int      delivery attempts per outbound message
//
// Only these flags are parsed (via flagx.FilterArgs) so the -c/-config
// flags owned by the JSON loader pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN or SQLite file path")
	fs.IntVar(&cfg.PollTimeout, "p", cfg.PollTimeout, "long-poll timeout in seconds")
	fs.IntVar(&cfg.SendRetries, "r", cfg.SendRetries, "delivery attempts per outbound message")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
