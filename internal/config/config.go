package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the newsfeed service.
type Config struct {
	Port      int    `mapstructure:"PORT"`
	BasePath  string `mapstructure:"BASE_PATH"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	LogOutput string `mapstructure:"LOG_OUTPUT"`

	EventQueue           EventQueueConfig          `mapstructure:",squash"`
	EventStorage         EventStorageConfig        `mapstructure:",squash"`
	SubscriptionStorage  SubscriptionStorageConfig `mapstructure:",squash"`
	NewsfeedIDLength     int                       `mapstructure:"NEWSFEED_ID_LENGTH"`
	ProcessorConcurrency int                       `mapstructure:"PROCESSOR_CONCURRENCY"`
	StatsLogIntervalSec  int                       `mapstructure:"STATS_LOG_INTERVAL_SECONDS"`
}

// EventQueueConfig bounds the shared work queue.
type EventQueueConfig struct {
	MaxSize int `mapstructure:"EVENT_QUEUE_MAX_SIZE"`
}

// EventStorageConfig bounds the event store.
type EventStorageConfig struct {
	MaxNewsfeeds         int `mapstructure:"EVENT_STORAGE_MAX_NEWSFEEDS"`
	MaxEventsPerNewsfeed int `mapstructure:"EVENT_STORAGE_MAX_EVENTS_PER_NEWSFEED"`
}

// SubscriptionStorageConfig bounds the subscription store.
type SubscriptionStorageConfig struct {
	MaxNewsfeeds                int `mapstructure:"SUBSCRIPTION_STORAGE_MAX_NEWSFEEDS"`
	MaxSubscriptionsPerNewsfeed int `mapstructure:"SUBSCRIPTION_STORAGE_MAX_SUBSCRIPTIONS_PER_NEWSFEED"`
}

// Load reads configuration from environment variables and an optional YAML file.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/newsfeed")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("BASE_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "stdout")

	v.SetDefault("EVENT_QUEUE_MAX_SIZE", 1000)
	v.SetDefault("EVENT_STORAGE_MAX_NEWSFEEDS", 10000)
	v.SetDefault("EVENT_STORAGE_MAX_EVENTS_PER_NEWSFEED", 1000)
	v.SetDefault("SUBSCRIPTION_STORAGE_MAX_NEWSFEEDS", 10000)
	v.SetDefault("SUBSCRIPTION_STORAGE_MAX_SUBSCRIPTIONS_PER_NEWSFEED", 1000)
	v.SetDefault("NEWSFEED_ID_LENGTH", 256)
	v.SetDefault("PROCESSOR_CONCURRENCY", 4)
	v.SetDefault("STATS_LOG_INTERVAL_SECONDS", 60)
}

func validate(config *Config) error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d", config.Port)
	}
	if config.EventQueue.MaxSize <= 0 {
		return fmt.Errorf("EVENT_QUEUE_MAX_SIZE must be positive")
	}
	if config.EventStorage.MaxNewsfeeds <= 0 || config.EventStorage.MaxEventsPerNewsfeed <= 0 {
		return fmt.Errorf("event storage limits must be positive")
	}
	if config.SubscriptionStorage.MaxNewsfeeds <= 0 || config.SubscriptionStorage.MaxSubscriptionsPerNewsfeed <= 0 {
		return fmt.Errorf("subscription storage limits must be positive")
	}
	if config.NewsfeedIDLength <= 0 {
		return fmt.Errorf("NEWSFEED_ID_LENGTH must be positive")
	}
	if config.ProcessorConcurrency <= 0 {
		return fmt.Errorf("PROCESSOR_CONCURRENCY must be positive")
	}

	validLevels := []string{"debug", "info", "warn", "warning", "error"}
	if !contains(validLevels, strings.ToLower(config.LogLevel)) {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
