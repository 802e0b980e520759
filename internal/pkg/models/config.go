package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Storage  StorageConfig
	Rewards  RewardsConfig
	Match    MatchConfig
	Location LocationConfig
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
	ShutdownTimeout int // seconds
}

// StorageConfig locates the flat-file data directory
type StorageConfig struct {
	DataDir string
}

// RewardsConfig contains the driver point-accrual rules
type RewardsConfig struct {
	PublishBonus        int // awarded when a listing completes with no reservations
	PerPassengerBonus   int // awarded per reserved passenger at completion
	RatingMultiplier    int // points per rating star
	EarlyPublishMinutes int // minimum publication-to-departure gap for the publish bonus
}

// MatchConfig contains matching configuration
type MatchConfig struct {
	NearbyPrecision uint // geohash precision for the nearby-listings lookup
}

// LocationConfig contains the fallback coordinate used when a caller supplies none
type LocationConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
