package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config/local.yaml"

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"prod"`
	ErrorLog   string `yaml:"error_log" env:"ERROR_LOG" env-default:"errors.log"`
	HTTPServer `yaml:"http_server"`
	Dataset    Dataset    `yaml:"dataset"`
	Production Production `yaml:"production"`
	Auth       Auth       `yaml:"auth"`
	CORS       CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Dataset: откуда при старте берутся наряды и справочники.
// driver: seed (yaml/toml файл), mysql или sqlite.
type Dataset struct {
	Driver   string `yaml:"driver" env:"DATASET_DRIVER" env-default:"seed"`
	SeedPath string `yaml:"seed_path" env:"DATASET_SEED_PATH" env-default:"./config/seed.yaml"`
	DSN      string `yaml:"dsn" env:"DATASET_DSN"`
	Migrate  bool   `yaml:"migrate" env:"DATASET_MIGRATE" env-default:"false"`
}

type Production struct {
	TickInterval  time.Duration `yaml:"tick_interval" env-default:"1s"`
	ActivityLimit int           `yaml:"activity_limit" env-default:"500"`
}

type Auth struct {
	Email       string        `yaml:"email" env:"AUTH_EMAIL" env-default:"admin@shopfloor.com"`
	Password    string        `yaml:"password" env:"AUTH_PASSWORD" env-default:"password123"`
	TokenSecret string        `yaml:"token_secret" env:"AUTH_TOKEN_SECRET" env-default:"change-me"`
	TokenTTL    time.Duration `yaml:"token_ttl" env-default:"12h"`
	MetricsUser string        `yaml:"metrics_user" env:"METRICS_USER" env-default:"metrics"`
	MetricsPass string        `yaml:"metrics_pass" env:"METRICS_PASS"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env-default:"http://localhost:5173,http://localhost:8081"`
}

// Load читает конфиг по пути; пустой путь: CONFIG_PATH или ./config/local.yaml.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = defaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read config: %w", op, err)
	}

	if cfg.Production.TickInterval <= 0 {
		return nil, fmt.Errorf("%s: production.tick_interval must be positive", op)
	}

	return &cfg, nil
}

func MustConfig(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
