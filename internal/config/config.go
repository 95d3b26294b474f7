package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Growth    GrowthConfig    `yaml:"growth"    validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"    validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"    validate:"required,oneof=debug info warn error"`
	Mode   string `yaml:"mode"   env:"LOG_MODE"   env-default:"release" validate:"required,oneof=debug release test"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type StorageConfig struct {
	Path          string `yaml:"path"            env:"STORAGE_PATH"            env-default:"data/marchabrasil.db"   validate:"required"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"marchabrasil"           validate:"required"`
	MaxValueBytes int    `yaml:"max_value_bytes" env:"STORAGE_MAX_VALUE_BYTES" env-default:"5242880"                validate:"min=0"`

	EventsKey          string `yaml:"events_key"          env:"STORAGE_EVENTS_KEY"          env-default:"events"             validate:"required"`
	ThumbnailsKey      string `yaml:"thumbnails_key"      env:"STORAGE_THUMBNAILS_KEY"      env-default:"thumbnails"         validate:"required"`
	SessionKey         string `yaml:"session_key"         env:"STORAGE_SESSION_KEY"         env-default:"session-identity"   validate:"required"`
	VerificationPrefix string `yaml:"verification_prefix" env:"STORAGE_VERIFICATION_PREFIX" env-default:"rsvp-verification-" validate:"required"`
}

type GrowthConfig struct {
	QuietPeriod    time.Duration `yaml:"quiet_period"     env:"GROWTH_QUIET_PERIOD"     env-default:"1h" validate:"gt=0"`
	PercentPerHour int           `yaml:"percent_per_hour" env:"GROWTH_PERCENT_PER_HOUR" env-default:"1"  validate:"min=1"`
	MaxPercent     int           `yaml:"max_percent"      env:"GROWTH_MAX_PERCENT"      env-default:"5"  validate:"min=1"`
	WindowHours    int           `yaml:"window_hours"     env:"GROWTH_WINDOW_HOURS"     env-default:"5"  validate:"min=1"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m" validate:"required,gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
