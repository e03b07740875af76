package config

import (
	"flag"
	"os"
	"strings"

	"github.com/dmitrijs2005/userform/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-s string   storage backend: memory, postgres or mongo
//	-d string   PostgreSQL DSN
//	-m string   MongoDB URI
//	-n string   MongoDB database name
//	-o string   allowed CORS origins, comma separated
//	-l string   log backend: slog or zap
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-m", "-n", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend (memory, postgres, mongo)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "MongoDB database name")
	origins := fs.String("o", strings.Join(config.CORSOrigins, ","), "allowed CORS origins, comma separated")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog, zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CORSOrigins = flagx.SplitList(*origins)
}
