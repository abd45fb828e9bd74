package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Salon timezone. All wall-clock math (business hours, staff hours,
	// day boundaries) is done in this zone.
	SalonTimezone string `mapstructure:"SALON_TIMEZONE"`

	// Google Calendar service-account credentials.
	GoogleServiceAccountEmail string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	GooglePrivateKey          string `mapstructure:"GOOGLE_PRIVATE_KEY"`

	// Default calendar ID, used when a staff member has no calendar of
	// their own configured.
	GoogleCalendarID string `mapstructure:"GOOGLE_CALENDAR_ID"`

	// Optional remote resolver for staff calendar IDs.
	CalendarIDsAPIURL string `mapstructure:"CALENDAR_IDS_API_URL"`

	// External staff-status feed.
	StaffStatusAPIURL string `mapstructure:"STAFF_STATUS_API_URL"`

	// Backend notification sink for confirmation emails.
	NotifyBackendURL string `mapstructure:"BACKEND_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SALON_TIMEZONE", "America/New_York")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "")
	viper.SetDefault("CALENDAR_IDS_API_URL", "")
	viper.SetDefault("STAFF_STATUS_API_URL", "")
	viper.SetDefault("BACKEND_URL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// StaffCalendarID returns the per-staff calendar override
// (GOOGLE_CALENDAR_ID_<STAFFID>), or "" when none is set.
func StaffCalendarID(staffID string) string {
	return viper.GetString("GOOGLE_CALENDAR_ID_" + strings.ToUpper(staffID))
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
