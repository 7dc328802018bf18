// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvServerPort is the environment variable containing the API listen port
	EnvServerPort = "PORT"

	// EnvJWTSecret is the environment variable containing the token signing secret
	EnvJWTSecret = "JWT_SECRET"

	// EnvAdminPassword is the environment variable overriding the seeded admin password
	EnvAdminPassword = "ADMIN_PASSWORD"

	// EnvDBHost is the environment variable containing the database host
	EnvDBHost = "DB_HOST"
	// EnvDBPort is the environment variable containing the database port
	EnvDBPort = "DB_PORT"
	// EnvDBUser is the environment variable containing the database user
	EnvDBUser = "DB_USER"
	// EnvDBPassword is the environment variable containing the database password
	EnvDBPassword = "DB_PASSWORD"
	// EnvDBName is the environment variable containing the database name
	EnvDBName = "DB_NAME"

	// EnvServerAddress is the environment variable pointing the CLI at an API server
	EnvServerAddress = "GAMESDB_SERVER_ADDRESS"
	// EnvToken is the environment variable carrying a bearer token for the CLI
	EnvToken = "GAMESDB_TOKEN"
)
