package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local environments only)
// and then from environment variables.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "sydoni-drive")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "127.0.0.1")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Storage config
	configs.Storage.DataDir = GetEnv("DATA_DIR", "data")

	// Rewards config
	configs.Rewards.PublishBonus = GetEnvAsInt("REWARD_PUBLISH_BONUS", 5)
	configs.Rewards.PerPassengerBonus = GetEnvAsInt("REWARD_PER_PASSENGER_BONUS", 10)
	configs.Rewards.RatingMultiplier = GetEnvAsInt("REWARD_RATING_MULTIPLIER", 2)
	configs.Rewards.EarlyPublishMinutes = GetEnvAsInt("REWARD_EARLY_PUBLISH_MINUTES", 20)

	// Match config
	configs.Match.NearbyPrecision = uint(GetEnvAsInt("MATCH_NEARBY_PRECISION", 5))

	// Location config (fallback coordinate when a caller supplies none)
	configs.Location.DefaultLatitude = GetEnvAsFloat("LOCATION_DEFAULT_LATITUDE", 12.2530)
	configs.Location.DefaultLongitude = GetEnvAsFloat("LOCATION_DEFAULT_LONGITUDE", -2.3622)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/sydoni-drive.log")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}
