package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/userform/internal/flagx"
)

// parseEnv overlays Config with USERFORM_* environment variables. A .env
// file in the working directory is loaded first when present.
//
//	USERFORM_SERVER_ADDR      endpoint address
//	USERFORM_STORAGE          memory | postgres | mongo
//	USERFORM_DATABASE_DSN     PostgreSQL DSN
//	USERFORM_MONGO_URI        MongoDB URI
//	USERFORM_MONGO_DATABASE   MongoDB database name
//	USERFORM_CORS_ORIGINS     comma separated origins
//	USERFORM_LOG_BACKEND      slog | zap
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("USERFORM_SERVER_ADDR", &config.EndpointAddr)
	setString("USERFORM_STORAGE", &config.Storage)
	setString("USERFORM_DATABASE_DSN", &config.DatabaseDSN)
	setString("USERFORM_MONGO_URI", &config.MongoURI)
	setString("USERFORM_MONGO_DATABASE", &config.MongoDatabase)
	setString("USERFORM_LOG_BACKEND", &config.LogBackend)

	if v := os.Getenv("USERFORM_CORS_ORIGINS"); v != "" {
		config.CORSOrigins = flagx.SplitList(v)
	}
}
