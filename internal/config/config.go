package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type QualityConfig struct {
	SalaryThreshold float64  `yaml:"salary_threshold"`
	Campaigns       []string `yaml:"campaigns"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	CustomerDatabase struct {
		DSN string `yaml:"url"`
	} `yaml:"customer_database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Upload struct {
		MaxSizeMB int64 `yaml:"max_size_mb"`
	} `yaml:"upload"`
	Reports struct {
		Dir string `yaml:"dir"`
	} `yaml:"reports"`
	Quality QualityConfig `yaml:"quality"`
	Email   struct {
		SMTPHost     string   `yaml:"smtp_host"`
		SMTPPort     int      `yaml:"smtp_port"`
		SMTPUser     string   `yaml:"smtp_user"`
		SMTPPassword string   `yaml:"smtp_password"`
		FromEmail    string   `yaml:"from_email"`
		Recipients   []string `yaml:"recipients"`
	} `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
}

func LoadConfig() *Config {
	// .env is optional; env vars win over config.yaml for secrets and DSNs
	_ = godotenv.Load()

	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("CUSTOMER_DATABASE_URL"); v != "" {
		cfg.CustomerDatabase.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}

	if cfg.Upload.MaxSizeMB == 0 {
		cfg.Upload.MaxSizeMB = 10
	}
	if cfg.Reports.Dir == "" {
		cfg.Reports.Dir = "./files/reports"
	}
	if cfg.Quality.SalaryThreshold == 0 {
		cfg.Quality.SalaryThreshold = 30000
	}
	return &cfg
}
