// config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Mongo         MongoConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Auth          AuthConfiguration
	Codec         CodecConfiguration
	Password      PasswordConfiguration
	SMS           SMSConfiguration
	RateLimit     RateLimitConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// MongoConfiguration stores the document store connection
type MongoConfiguration struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// DatabaseConfiguration stores data for the graph database connection
type DatabaseConfiguration struct {
	URI      string
	Username string
	Password string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	Password        string
	DB              int
	DefaultCacheTTL time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

type AuthConfiguration struct {
	VerifyTimeout time.Duration
	Admin         AdminAuthConfiguration
	Firebase      FirebaseAuthConfiguration
}

type AdminAuthConfiguration struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type FirebaseAuthConfiguration struct {
	ProjectID          string
	JWKSURL            string
	KeyCacheTTL        time.Duration
	FetchTimeout       time.Duration
	MinRefreshInterval time.Duration
}

// CodecConfiguration holds the QR token secret and its markers
type CodecConfiguration struct {
	Secret  string
	KeySalt string
	Salt    string
	Pepper  string
}

type PasswordConfiguration struct {
	Pepper string
	Cost   int
}

type SMSConfiguration struct {
	Enabled        bool
	AccountSID     string
	AuthToken      string
	From           string
	AlertRecipient string
}

type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

var config *Configuration

// InitConfig loads config/config.yaml (or cfgFile when set), then the
// environment. SERVER_PORT overrides server.port.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("config")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	return viper.Unmarshal(&config)
}

// SetDefaults registers a default for every key the service reads.
func SetDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.allowedOrigins", []string{"http://localhost:3000"})
	viper.SetDefault("server.shutdownTimeout", 5*time.Second)

	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "mobility")
	viper.SetDefault("mongo.timeout", 10*time.Second)

	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.username", "neo4j")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.defaultCacheTTL", 10*time.Minute)

	viper.SetDefault("elasticsearch.url", "http://localhost:9200")

	viper.SetDefault("auth.verifyTimeout", 5*time.Second)
	viper.SetDefault("auth.admin.tokenTTL", 24*time.Hour)
	viper.SetDefault("auth.firebase.jwksURL", "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com")
	viper.SetDefault("auth.firebase.keyCacheTTL", time.Hour)
	viper.SetDefault("auth.firebase.fetchTimeout", 5*time.Second)
	viper.SetDefault("auth.firebase.minRefreshInterval", 30*time.Second)

	viper.SetDefault("pdp.lookupTimeout", 3*time.Second)

	viper.SetDefault("codec.keySalt", "keySalt")
	viper.SetDefault("codec.salt", "salt-surirusimasuri")
	viper.SetDefault("codec.pepper", "pepper-surisurimasuri")

	viper.SetDefault("password.cost", 12)

	viper.SetDefault("sms.enabled", false)

	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", time.Minute)

	viper.SetDefault("log.dir", "logging")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 retrieves a float64 value from the configuration
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
