package infra

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

type Config struct {
	Env         string
	Port        string
	PostgresURL string
	AutoMigrate bool
	LogLevel    string

	JWTSecret string
	JWTTTL    time.Duration
	Location  *time.Location

	RetryMaxRetries   int
	RetryInitialDelay time.Duration

	CORSOrigins []string

	SMTP       SMTPSettings
	AppBaseURL string

	TipProvider string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
}

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoadConfig reads the environment, after an optional .env file.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		AutoMigrate: getBool("AUTO_MIGRATE", true),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    time.Duration(getInt("JWT_TTL_MINUTES", 60)) * time.Minute,
		Location:  utils.LoadLocation(getEnv("APP_TIMEZONE", "Europe/Madrid")),

		RetryMaxRetries:   getInt("RETRY_MAX_RETRIES", retry.DefaultMaxRetries),
		RetryInitialDelay: time.Duration(getInt("RETRY_INITIAL_DELAY_MS", int(retry.DefaultInitialDelay/time.Millisecond))) * time.Millisecond,

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		SMTP: SMTPSettings{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:5173"),

		TipProvider: strings.ToLower(os.Getenv("TIP_PROVIDER")),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

func (c Config) IsProduction() bool { return c.Env == "production" }

func (c Config) RetryPolicy() retry.Policy {
	return retry.Policy{MaxRetries: c.RetryMaxRetries, InitialDelay: c.RetryInitialDelay}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
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
