package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Mongo    Mongo
	Redis    Redis
	LLM      LLM
	Auth     Auth
	Log      Log
	Tracing  Tracing
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // "postgres", "mongo" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file, ":memory:" allowed
}

type Mongo struct {
	URI      string
	Database string
}

type Redis struct {
	URL      string
	CacheTTL time.Duration
}

// LLM holds grading provider settings. They are injected into the grading
// client at construction time.
type LLM struct {
	Provider      string // "openai" (any OpenAI-compatible endpoint) or "gemini"
	BaseURL       string
	APIKey        string
	Model         string
	Temperature   float64
	Timeout       time.Duration
	GeminiApiKey  string
	GeminiModel   string
	GeminiBaseURL string // optional endpoint override, e.g. a regional proxy
}

type Auth struct {
	JWTSecret string
	// TrustUserIDHeader keeps X-User-Id honoured when JWT_SECRET is set.
	TrustUserIDHeader bool
}

type Log struct {
	Mode  string
	Level string
}

// Tracing is off unless OTEL_ENABLED is set. Without an OTLP endpoint spans
// are printed to stdout.
type Tracing struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	Insecure    bool
	SampleRatio float64
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Mongo.URI = viper.GetString("MONGO_URI")
	config.Mongo.Database = viper.GetString("MONGO_DB")

	config.Redis.URL = viper.GetString("REDIS_URL")
	config.Redis.CacheTTL = time.Duration(viper.GetInt("QUESTION_CACHE_TTL_SECONDS")) * time.Second

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.BaseURL = viper.GetString("LLM_BASE_URL")
	config.LLM.APIKey = viper.GetString("LLM_API_KEY")
	config.LLM.Model = viper.GetString("LLM_MODEL")
	config.LLM.Temperature = viper.GetFloat64("LLM_TEMPERATURE")
	config.LLM.Timeout = time.Duration(viper.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.LLM.GeminiBaseURL = viper.GetString("GEMINI_BASE_URL")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TrustUserIDHeader = viper.GetBool("TRUST_USER_ID_HEADER")

	config.Log.Mode = viper.GetString("LOG_MODE")
	config.Log.Level = viper.GetString("LOG_LEVEL")

	config.Tracing.Enabled = viper.GetBool("OTEL_ENABLED")
	config.Tracing.ServiceName = viper.GetString("OTEL_SERVICE_NAME")
	config.Tracing.Endpoint = viper.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")
	config.Tracing.Insecure = viper.GetBool("OTEL_EXPORTER_OTLP_INSECURE")
	config.Tracing.SampleRatio = viper.GetFloat64("OTEL_SAMPLER_RATIO")

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("llm_provider", config.LLM.Provider).
		Str("llm_model", config.LLM.Model).
		Dur("llm_timeout", config.LLM.Timeout).
		Bool("redis_cache", config.Redis.URL != "").
		Bool("tracing", config.Tracing.Enabled).
		Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_PATH", "interviewprep.db")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "careermind")
	viper.SetDefault("QUESTION_CACHE_TTL_SECONDS", 600)
	viper.SetDefault("LLM_PROVIDER", "openai")
	viper.SetDefault("LLM_BASE_URL", "https://api.moonshot.ai/v1")
	viper.SetDefault("LLM_MODEL", "kimi-k2-0905")
	viper.SetDefault("LLM_TEMPERATURE", 0.7)
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LOG_MODE", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("OTEL_SERVICE_NAME", "interviewprep")
	viper.SetDefault("OTEL_SAMPLER_RATIO", 0.1)
}
