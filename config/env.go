package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	CatalogPath    string
	SpecsPath      string
	StaticDir      string
	SessionSecret  string
	SessionTTL     time.Duration
	CookieSecure   bool
	RedisURL       string
	RedisAddr      string
	RedisPassword  string
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	MigrationsDir  string
	KafkaBrokers   []string
	KafkaTopic     string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
	NotifyEmail    string
	CloudinaryName string
	CloudinaryKey  string
	CloudinarySec  string
	ImageFolder    string
	AdminKeyHash   string
	OriginURL      string
	SinkTimeout    time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()
	return AppConfig
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", getEnv("APP_PORT", "10000")),
		CatalogPath:    getEnv("CATALOG_PATH", "./data/products.csv"),
		SpecsPath:      getEnv("SPECS_PATH", "./data/specs.csv"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		SessionSecret:  getEnv("SESSION_SECRET", "secret"),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "trial_shop"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "database/migration"),
		KafkaBrokers:   splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "trial-actions"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
		NotifyEmail:    os.Getenv("NOTIFY_EMAIL"),
		CloudinaryName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:  os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySec:  os.Getenv("CLOUDINARY_API_SECRET"),
		ImageFolder:    getEnv("IMAGE_FOLDER", "trial-shop"),
		AdminKeyHash:   os.Getenv("ADMIN_KEY_HASH"),
		OriginURL:      os.Getenv("ORIGIN_URL"),
		SinkTimeout:    getDuration("LOG_SINK_TIMEOUT", 5*time.Second),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DatabaseConfigured reports whether an action log database was configured.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisAddr != ""
}

func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.NotifyEmail != ""
}

func (c *Config) CloudinaryConfigured() bool {
	return c.CloudinaryName != "" && c.CloudinaryKey != "" && c.CloudinarySec != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
