package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// ReporterConfig selects the collector endpoint. When Enabled is false the
// reporter is constructed as a permanent no-op and never opens a connection.
type ReporterConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Enabled bool   `mapstructure:"enabled"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type CollectorConfig struct {
	Bind  string      `mapstructure:"bind"`
	Kafka KafkaConfig `mapstructure:"kafka"`
}

// EventgenConfig drives the synthetic event generator used to smoke-test
// a collector deployment.
type EventgenConfig struct {
	IntervalSeconds int    `mapstructure:"interval_seconds"`
	SrcID           string `mapstructure:"src_id"`
	DstID           string `mapstructure:"dst_id"`
}

type Config struct {
	Reporter  ReporterConfig  `mapstructure:"reporter"`
	Collector CollectorConfig `mapstructure:"collector"`
	Eventgen  EventgenConfig  `mapstructure:"eventgen"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// env overrides: WHACKERLINK_REPORTER_PORT etc. (optional)
	v.SetEnvPrefix("WHACKERLINK")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("reporter.address", "127.0.0.1")
	v.SetDefault("reporter.port", 8080)
	v.SetDefault("reporter.enabled", false)
	v.SetDefault("collector.bind", "127.0.0.1:8080")
	v.SetDefault("collector.kafka.enabled", false)
	v.SetDefault("collector.kafka.topic", "whackerlink.reports")
	v.SetDefault("eventgen.interval_seconds", 10)
	v.SetDefault("eventgen.src_id", "100")
	v.SetDefault("eventgen.dst_id", "200")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// quick sanity checks
	if cfg.Reporter.Port <= 0 || cfg.Reporter.Port > 65535 {
		return nil, fmt.Errorf("reporter port out of range: %d", cfg.Reporter.Port)
	}
	if cfg.Eventgen.IntervalSeconds < 1 {
		cfg.Eventgen.IntervalSeconds = 10
	}

	return &cfg, nil
}
