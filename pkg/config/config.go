package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/code-100-precent/LingStamp/pkg/image"
	"github.com/code-100-precent/LingStamp/pkg/logger"
)

// DefaultConfigDir is searched for an optional config.yaml.
const DefaultConfigDir = "./config"

// Config represents the application configuration. Fields are filled by
// Parse from the keys mode and stamp_* (env MODE, STAMP_*) and log_*.
type Config struct {
	Mode     string
	Log      logger.LogConfig
	Formats  image.FormatSet
	Quality  int
	FontPath string
}

// GlobalConfig is the global configuration instance
var GlobalConfig *Config

// Load loads configuration from DefaultConfigDir and the environment into
// GlobalConfig.
func Load() error {
	cfg, err := LoadFrom(DefaultConfigDir)
	if err != nil {
		return err
	}
	GlobalConfig = cfg
	return nil
}

// LoadFrom reads dir/config.yaml when present and overlays environment
// variables. A missing file is not an error; a malformed one is.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return Parse(v), nil
}

// Parse builds a Config from v. Values that cannot be converted fall back
// to their defaults.
func Parse(v *viper.Viper) *Config {
	return &Config{
		Mode: getStringOrDefault(v, "mode", "production"),
		Log: logger.LogConfig{
			Level:      getStringOrDefault(v, "log_level", "info"),
			Filename:   getStringOrDefault(v, "log_filename", "./logs/stamp.log"),
			MaxSize:    getIntOrDefault(v, "log_max_size", 100),
			MaxAge:     getIntOrDefault(v, "log_max_age", 30),
			MaxBackups: getIntOrDefault(v, "log_max_backups", 5),
			Daily:      getBoolOrDefault(v, "log_daily", false),
			Console:    getBoolOrDefault(v, "log_console", true),
		},
		Formats:  getFormatSet(v, "stamp_formats"),
		Quality:  getIntOrDefault(v, "stamp_quality", image.DefaultQuality),
		FontPath: getStringOrDefault(v, "stamp_font", ""),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "production")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_filename", "./logs/stamp.log")
	v.SetDefault("log_max_size", 100)
	v.SetDefault("log_max_age", 30)
	v.SetDefault("log_max_backups", 5)
	v.SetDefault("log_daily", false)
	v.SetDefault("log_console", true)

	v.SetDefault("stamp_formats", strings.Join(image.DefaultExtensions, ","))
	v.SetDefault("stamp_quality", image.DefaultQuality)
	v.SetDefault("stamp_font", "")
}

// getStringOrDefault returns the value of key, or defaultValue if it is blank
func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := strings.TrimSpace(cast.ToString(v.Get(key)))
	if value == "" {
		return defaultValue
	}
	return value
}

// getBoolOrDefault returns the boolean value of key, or defaultValue if it does not parse
func getBoolOrDefault(v *viper.Viper, key string, defaultValue bool) bool {
	value, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getIntOrDefault returns the integer value of key, or defaultValue if it is zero or does not parse
func getIntOrDefault(v *viper.Viper, key string, defaultValue int) int {
	value, err := cast.ToIntE(v.Get(key))
	if err != nil || value == 0 {
		return defaultValue
	}
	return value
}

// getFormatSet accepts either a YAML list or a comma separated string.
func getFormatSet(v *viper.Viper, key string) image.FormatSet {
	switch raw := v.Get(key).(type) {
	case []any, []string:
		if set := image.NewFormatSet(cast.ToStringSlice(raw)...); len(set) > 0 {
			return set
		}
		return image.DefaultFormatSet()
	default:
		return image.ParseFormatSet(cast.ToString(raw))
	}
}
