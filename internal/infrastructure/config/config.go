package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // 数据库迁移模式: "auto"(默认), "drop"(删除重建)

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// Upload
	UploadDir       string
	MaxUploadSizeMB int

	// JWT Authentication
	JWTSecretKey string

	// Admin
	AdminPassword string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	return &Config{
		// Environment type
		EnvType: envType,

		// Database config - use environment-specific variables if available
		DBHost:          getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:          getEnv(prefix+"DB_USER", getEnv("DB_USER", "root")),
		DBPassword:      getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "")),
		DBName:          getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "seminar_db")),
		DBPort:          getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "3306")),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", getEnv("DB_MIGRATION_MODE", "auto")),

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "4000")),

		// Redis config
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// Upload config
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSizeMB: getEnvAsInt("MAX_UPLOAD_SIZE_MB", 10),

		// JWT Config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "secretkeychange"),

		// Admin Config
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&multiStatements=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// MaxUploadBytes returns the upload size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) << 20
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
