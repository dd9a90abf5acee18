package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	API        API        `yaml:"api"`
	Redis      Redis      `yaml:"redis"`
	Session    Session    `yaml:"session"`
	CORS       CORS       `yaml:"cors"`
	Catalog    Catalog    `yaml:"catalog"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	StaticDir   string        `yaml:"static_dir" env:"HTTP_STATIC_DIR" env-default:"./static"`
}

// API describes the external Noroff API the service talks to.
type API struct {
	BaseURL   string        `yaml:"base_url" env:"NOROFF_API_BASE_URL" env-default:"https://v2.api.noroff.dev"`
	APIKey    string        `yaml:"api_key" env:"NOROFF_API_KEY"`
	Timeout   time.Duration `yaml:"timeout" env:"NOROFF_API_TIMEOUT" env-default:"15s"`
	RateLimit float64       `yaml:"rate_limit" env:"NOROFF_API_RATE_LIMIT" env-default:"10"`
	Burst     int           `yaml:"burst" env:"NOROFF_API_BURST" env-default:"20"`
}

// Redis is optional. An empty address keeps sessions in process memory.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Session struct {
	TTL          time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	PollInterval time.Duration `yaml:"poll_interval" env:"SESSION_POLL_INTERVAL" env-default:"1m"`
	CookieSecure bool          `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE" env-default:"false"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

// Catalog controls the public venue list snapshot.
type Catalog struct {
	CacheTTL time.Duration `yaml:"cache_ttl" env:"CATALOG_CACHE_TTL" env-default:"2m"`
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

// Load reads the YAML file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}
