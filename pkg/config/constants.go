package config

// EnvPrefix is empty because every variable carries the full AUTOGESTION_ name.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv              = "AUTOGESTION_APP_ENV"
	EnvAppPort             = "AUTOGESTION_APP_PORT"
	EnvRedisURL            = "AUTOGESTION_REDIS_URL"
	EnvStorageFallbackPath = "AUTOGESTION_STORAGE_FALLBACK_PATH"
)
