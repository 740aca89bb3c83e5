package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string      `yaml:"env" env-default:"prod"`
	Assets AssetsRef   `yaml:"assets"`
	HTTP   HTTPConfig  `yaml:"http"`
	Store  StoreConfig `yaml:"store"`
	Log    LogConfig   `yaml:"log"`
}

type AssetsRef struct {
	ConfigPath string `yaml:"config_path" env-required:"true"`
}

type HTTPConfig struct {
	Address      string        `yaml:"address" env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
}

type StoreConfig struct {
	Path string `yaml:"path" env-default:"/var/lib/condmon/reports.db"`
	// Retention bounds how long generated reports are kept.
	Retention time.Duration `yaml:"retention" env-default:"8760h"`
	// CleanupInterval is how often expired reports are purged.
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"1h"`
}

type LogConfig struct {
	Level  string `yaml:"level" env-default:"info"`
	Format string `yaml:"format" env-default:"json"`
}

func MustLoad(configPath string) *Config {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}
