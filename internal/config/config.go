package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeout is how many seconds a graceful shutdown may take
	// before in-flight requests are abandoned.
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"required,gte=1,lte=300"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL           string `mapstructure:"url"            validate:"required"`
	MigrationsDir string `mapstructure:"migrations_dir" validate:"required"`
}

// AuthConfig contains authentication-related settings.
type AuthConfig struct {
	// BcryptCost is the work factor used when hashing passwords.
	// Zero means bcrypt.DefaultCost.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"omitempty,gte=4,lte=31"`
}
