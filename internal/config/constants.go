package config

// ===========================================
// Environment Variable Names
// ===========================================

const (
	EnvPort         = "PORT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvEnvironment  = "ENVIRONMENT"
	EnvDBUser       = "DB_USER"
	EnvDBPassword   = "DB_PASSWORD"
	EnvDBHost       = "DB_HOST"
	EnvDBPort       = "DB_PORT"
	EnvDBName       = "DB_NAME"
	EnvDiscordToken = "DISCORD_TOKEN"
	EnvDiscordAppID = "DISCORD_APP_ID"
	EnvBoardRefresh = "BOARD_REFRESH_SECONDS"
)

// ===========================================
// Default Values
// ===========================================

const (
	DefaultPort         = "8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultEnvironment  = "dev"
	DefaultDBUser       = "postgres"
	DefaultDBPassword   = "postgres"
	DefaultDBHost       = "localhost"
	DefaultDBPort       = "5432"
	DefaultDBName       = "aurorabot"
	DefaultBoardRefresh = "300"
)
