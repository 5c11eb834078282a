package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type TradeConfig struct {
	Env        string `yaml:"env" env:"TRADE_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	TradeDB    `yaml:"trade_db"`
	LogConfig  `yaml:"log_config"`
	Kafka      `yaml:"kafka"`
	Paystack   `yaml:"paystack"`
	Auth       `yaml:"auth"`
	Migrations `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type TradeDB struct {
	Dsn string `yaml:"dsn" env:"TRADE_DB_DSN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

type Kafka struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Paystack struct {
	BaseURL       string `yaml:"base_url"`
	SecretKey     string `yaml:"secret_key" env:"PAYSTACK_SECRET_KEY"`
	WebhookSecret string `yaml:"webhook_secret" env:"PAYSTACK_WEBHOOK_SECRET"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"TRADE_JWT_SECRET"`
}

type Migrations struct {
	Path string `yaml:"path" env-default:"migrations"`
}

func MustLoad() *TradeConfig {
	configPath := os.Getenv("TRADE_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("TRADE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg TradeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
