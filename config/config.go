// Package config handles application configuration loading and management
package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration
type Config struct {
	// Application contains application-level settings
	Application ApplicationConfig `mapstructure:"application"`
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`
	// Infrastructure contains infrastructure connection settings
	Infrastructure InfrastructureConfig `mapstructure:"infrastructure"`
	// Security contains security-related settings
	Security SecurityConfig `mapstructure:"security"`
	// Integrations contains external service settings
	Integrations IntegrationsConfig `mapstructure:"integrations"`
}

// ApplicationConfig holds the application-level configuration
type ApplicationConfig struct {
	// Name specifies the name of the application
	Name string `mapstructure:"name"`
	// Version specifies the version of the application
	Version string `mapstructure:"version"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout defines the maximum duration for reading the entire request, in seconds
	ReadTimeout int `mapstructure:"read_timeout"` // in seconds
	// WriteTimeout defines the maximum duration before timing out writes of the response, in seconds
	WriteTimeout int `mapstructure:"write_timeout"` // in seconds
	// ShutdownTimeout defines how long the server waits for active connections during shutdown, in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // in seconds
}

// InfrastructureConfig holds the infrastructure configuration
type InfrastructureConfig struct {
	// Postgres contains PostgreSQL-specific settings
	Postgres PostgresConfig `mapstructure:"postgres"`
	// Redis contains Redis configuration
	Redis RedisConfig `mapstructure:"redis"`
	// Kafka contains Kafka configuration
	Kafka KafkaConfig `mapstructure:"kafka"`
}

// SecurityConfig holds the security configuration
type SecurityConfig struct {
	// JWT contains token configuration
	JWT JWTConfig `mapstructure:"jwt"`
	// AdminServiceKey gates the administrative endpoints
	AdminServiceKey string `mapstructure:"admin_service_key"`
}

// JWTConfig holds the token configuration
type JWTConfig struct {
	// AccessTokenSecret is the secret key for signing API access tokens
	AccessTokenSecret string `mapstructure:"access_token_secret"`
	// SignInTokenSecret is the secret key for signing CRM sign-in link tokens
	SignInTokenSecret string `mapstructure:"signin_token_secret"`
	// AccessTokenExpiry is the expiry time for access tokens in minutes
	AccessTokenExpiry int `mapstructure:"access_token_expiry"` // in minutes
	// SignInTokenExpiry is the expiry time for sign-in link tokens in minutes
	SignInTokenExpiry int `mapstructure:"signin_token_expiry"` // in minutes
}

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	// Addrs specifies the Redis server addresses
	Addrs []string `mapstructure:"addrs"`
	// Username specifies the Redis username
	Username string `mapstructure:"username"`
	// Password specifies the Redis password
	Password string `mapstructure:"password"`
	// DB specifies the Redis database number
	DB int `mapstructure:"db"`
	// PoolSize specifies the maximum number of socket connections
	PoolSize int `mapstructure:"pool_size"`
	// LeadCacheTTL specifies how long the cached lead list lives, in seconds
	LeadCacheTTL int `mapstructure:"lead_cache_ttl"`
}

// KafkaConfig holds the Kafka configuration
type KafkaConfig struct {
	// Brokers specifies the Kafka broker addresses
	Brokers []string `mapstructure:"brokers"`
	// Topics contains specific topic names for different message types
	Topics KafkaTopics `mapstructure:"topics"`
}

// KafkaTopics holds specific topic names for different message types
type KafkaTopics struct {
	// LeadsChanged specifies the topic name for lead change notifications
	LeadsChanged string `mapstructure:"leads_changed"`
}

// IntegrationsConfig holds settings for external services
type IntegrationsConfig struct {
	// AutomationWebhookURL is the fixed workflow-automation webhook the proxy forwards to
	AutomationWebhookURL string `mapstructure:"automation_webhook_url"`
	// FlightData contains flight-schedule API settings
	FlightData FlightDataConfig `mapstructure:"flight_data"`
	// CRMBaseURL is the CRM front-end the sign-in link redirects to
	CRMBaseURL string `mapstructure:"crm_base_url"`
}

// FlightDataConfig holds flight-schedule API settings
type FlightDataConfig struct {
	// BaseURL is the flight-schedule API endpoint
	BaseURL string `mapstructure:"base_url"`
	// APIKey authenticates against the flight-schedule API
	APIKey string `mapstructure:"api_key"`
	// TimeoutSeconds bounds each lookup
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// DomesticCheckInHours is the check-in window for domestic flights
	DomesticCheckInHours int `mapstructure:"domestic_check_in_hours"`
	// InternationalCheckInHours is the check-in window for international flights
	InternationalCheckInHours int `mapstructure:"international_check_in_hours"`
}

// LoadConfig loads the application configuration from various sources
// It first looks for a crm.yaml file in the usual config directories
// If no config file is found, it uses environment variables and default values
func LoadConfig() (*Config, error) {
	viper.SetConfigName("crm")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("configs")

	// Set default values
	viper.SetDefault("application.name", "Travel CRM Service")
	viper.SetDefault("application.version", "1.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 15)     // seconds
	viper.SetDefault("server.write_timeout", 15)    // seconds
	viper.SetDefault("server.shutdown_timeout", 30) // seconds
	viper.SetDefault("infrastructure.postgres.host", "localhost")
	viper.SetDefault("infrastructure.postgres.port", 5432)
	// No defaults for user and password - they must be provided
	viper.SetDefault("infrastructure.postgres.dbname", "crm_db")
	viper.SetDefault("infrastructure.postgres.schema", "public")
	viper.SetDefault("infrastructure.postgres.sslmode", "disable")
	viper.SetDefault("infrastructure.postgres.max_idle_conns", 10)
	viper.SetDefault("infrastructure.postgres.max_open_conns", 100)
	viper.SetDefault("infrastructure.postgres.conn_max_idle_time", 5) // minutes
	viper.SetDefault("infrastructure.postgres.conn_max_lifetime", 60) // minutes
	viper.SetDefault("infrastructure.postgres.debug", false)
	viper.SetDefault("infrastructure.redis.addrs", []string{"localhost:6379"})
	viper.SetDefault("infrastructure.redis.username", "")
	viper.SetDefault("infrastructure.redis.password", "")
	viper.SetDefault("infrastructure.redis.db", 0)
	viper.SetDefault("infrastructure.redis.pool_size", 10)
	viper.SetDefault("infrastructure.redis.lead_cache_ttl", 60) // seconds
	viper.SetDefault("infrastructure.kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("infrastructure.kafka.topics.leads_changed", "crm.leads.changed")
	// No defaults for JWT secrets - they must be provided via config or env
	viper.SetDefault("security.jwt.access_token_expiry", 15) // minutes
	viper.SetDefault("security.jwt.signin_token_expiry", 5)  // minutes
	viper.SetDefault("integrations.flight_data.timeout_seconds", 10)
	viper.SetDefault("integrations.flight_data.domestic_check_in_hours", 24)
	viper.SetDefault("integrations.flight_data.international_check_in_hours", 48)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("Config file not found, using environment variables and defaults")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate required secrets
	if config.Security.JWT.AccessTokenSecret == "" {
		return nil, errors.New("JWT access token secret is required")
	}
	if config.Security.JWT.SignInTokenSecret == "" {
		return nil, errors.New("JWT sign-in token secret is required")
	}
	if config.Infrastructure.Postgres.User == "" {
		return nil, errors.New("database user is required")
	}
	if config.Infrastructure.Postgres.Password == "" {
		return nil, errors.New("database password is required")
	}

	return &config, nil
}

// PostgresConfig holds the PostgreSQL database configuration
type PostgresConfig struct {
	// Host specifies the database server host
	Host string `mapstructure:"host"`
	// Port specifies the database server port
	Port int `mapstructure:"port"`
	// User specifies the database user
	User string `mapstructure:"user"`
	// Password specifies the database password
	Password string `mapstructure:"password"`
	// DBName specifies the database name
	DBName string `mapstructure:"dbname"`
	// Schema specifies the database schema
	Schema string `mapstructure:"schema"`
	// SSLMode specifies the SSL mode for database connection
	SSLMode string `mapstructure:"sslmode"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"` // in minutes
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // in minutes
	// Debug enables or disables debug mode for database operations
	Debug bool `mapstructure:"debug"`
	// IsUseMigrate specifies whether to run auto-migration on startup
	IsUseMigrate bool `mapstructure:"is_use_migrate"`
}

// GetConfigPath returns the path of the loaded config file
func GetConfigPath() string {
	return viper.ConfigFileUsed()
}
