package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	FirstAdminUsername string `yaml:"first_admin_username"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig populates AppConfig either from environment variables
// (when DATABASE_URL is set, the test/deploy mode) or from the YAML
// config file at CONFIG_PATH (default config/config.yaml).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyEnvOverrides(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil {
			cfg.JWT.TTL = n
		}
	}
	cfg.CORS.AllowedOrigins = []string{"*"}

	applyEnvOverrides(&cfg)
	AppConfig = &cfg
}

// applyEnvOverrides lets single env vars win over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("FIRST_ADMIN_USERNAME"); v != "" {
		cfg.FirstAdminUsername = v
	}
	if v := os.Getenv("FIRST_ADMIN_PASSWORD"); v != "" {
		cfg.FirstAdminPassword = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
