package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	SMTP     SMTPDefaultConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains message bus configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains session-token issuer configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// SMTPDefaultConfig is the process-wide fallback transport used when a
// tenant has no active gateway of their own. Injected into the
// dispatcher at construction.
type SMTPDefaultConfig struct {
	Host     string
	Port     int
	Security string
	Username string
	Password string
	FromName string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
