package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
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
		// RefreshSecret опционален: при пустом значении используется Secret.
		// Fallback явный и логируется при старте (см. app.Run)
		RefreshSecret  string `yaml:"refresh_secret"`
		AccessTTLHours int    `yaml:"access_ttl_hours"`
		RefreshTTLDays int    `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Queue struct {
		URL string `yaml:"url"` // AMQP URL; пусто = публикация событий отключена
	} `yaml:"queue"`

	RateLimit struct {
		Enabled        bool `yaml:"enabled"`
		Capacity       int  `yaml:"capacity"`
		RefillTokens   int  `yaml:"refill_tokens"`
		RefillInterval int  `yaml:"refill_interval_seconds"`
	} `yaml:"rate_limit"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`

	Worker struct {
		SweepIntervalMinutes int `yaml:"sweep_interval_minutes"`
	} `yaml:"worker"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию: сначала .env (если есть),
// затем config.yaml, либо полностью из переменных окружения (режим теста/контейнера)
func LoadConfig() {
	var cfg Config

	// .env не обязателен - в контейнере переменные приходят из среды
	_ = godotenv.Load()

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

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment variables")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.RefreshSecret = os.Getenv("JWT_REFRESH_SECRET")
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Queue.URL = os.Getenv("RABBITMQ_URL")
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.AccessTTLHours == 0 {
		cfg.JWT.AccessTTLHours = 24 // ~1 день
	}
	if cfg.JWT.RefreshTTLDays == 0 {
		cfg.JWT.RefreshTTLDays = 7
	}
	if cfg.Worker.SweepIntervalMinutes == 0 {
		cfg.Worker.SweepIntervalMinutes = 60
	}
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = "admin@renta.local"
	}
	if cfg.RateLimit.Capacity == 0 {
		cfg.RateLimit.Capacity = 60
	}
	if cfg.RateLimit.RefillTokens == 0 {
		cfg.RateLimit.RefillTokens = 1
	}
	if cfg.RateLimit.RefillInterval == 0 {
		cfg.RateLimit.RefillInterval = 1
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
