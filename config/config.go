package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Parsing pipeline
	Parser    ParserConfig
	Extractor ExtractorConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig tunes the rule-based pipeline.
type ParserConfig struct {
	Timezone        string
	OwnerNames      []string
	RateLimitPerMin int
}

// ExtractorConfig configures the optional remote extraction service.
// The client is only wired when Enabled and the credentials are set.
type ExtractorConfig struct {
	Enabled       bool
	BaseURL       string
	AppKey        string
	AppSecret     string
	Timeout       time.Duration
	MinConfidence float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.RateLimitPerMin = viper.GetInt("parser.rate_limit_per_min")

	// Split owner names since viper might not parse array seamlessly from env
	var owners []string
	if rawOwners := viper.GetString("parser.owner_names"); rawOwners != "" {
		for _, owner := range strings.Split(rawOwners, ",") {
			owner = strings.TrimSpace(owner)
			if owner != "" {
				owners = append(owners, owner)
			}
		}
	}
	cfg.Parser.OwnerNames = owners

	// Extractor
	cfg.Extractor.Enabled = viper.GetBool("extractor.enabled")
	cfg.Extractor.BaseURL = viper.GetString("extractor.base_url")
	cfg.Extractor.AppKey = viper.GetString("extractor.app_key")
	cfg.Extractor.AppSecret = viper.GetString("extractor.app_secret")
	cfg.Extractor.MinConfidence = viper.GetFloat64("extractor.min_confidence")
	if appKey := viper.GetString("extractor_app_key"); appKey != "" {
		cfg.Extractor.AppKey = appKey
	}
	if appSecret := viper.GetString("extractor_app_secret"); appSecret != "" {
		cfg.Extractor.AppSecret = appSecret
	}

	timeout, err := time.ParseDuration(viper.GetString("extractor.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid extractor.timeout: %w", err)
	}
	cfg.Extractor.Timeout = timeout

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("parser.timezone", "Asia/Shanghai")
	viper.SetDefault("parser.rate_limit_per_min", 60)
	viper.SetDefault("extractor.enabled", false)
	viper.SetDefault("extractor.timeout", "3s")
	viper.SetDefault("extractor.min_confidence", 0.7)
}
