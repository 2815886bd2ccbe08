package config

const (
	EnvPrefix = "storeline"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "STORELINE_APP_ENV"
	EnvPort   = "STORELINE_APP_PORT"

	EnvDBDSN  = "STORELINE_DB_DSN"
	EnvDBHost = "STORELINE_DB_HOST"
	EnvDBUser = "STORELINE_DB_USER"
	EnvDBName = "STORELINE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
