package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	MongoModeAtlas  = "atlas"
	MongoModeLocal  = "local"
	MongoModeMemory = "memory"

	TokenFormatJWT    = "jwt"
	TokenFormatPaseto = "paseto"

	defaultPort = "5000"
)

// AppConfig holds every setting the server reads from the environment.
type AppConfig struct {
	Port     string `env:"PORT"`
	Env      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoMode     string `env:"MONGO_MODE" envDefault:"atlas"`
	MongoUser     string `env:"USER_Name"`
	MongoPassword string `env:"PASSWORD"`
	MongoHost     string `env:"MONGO_CLUSTER_HOST" envDefault:"cluster0.bqstehg.mongodb.net"`
	MongoURILocal string `env:"MONGO_URI_LOCAL" envDefault:"mongodb://localhost:27017"`
	DatabaseName  string `env:"MONGO_DATABASE" envDefault:"afElegance"`
	MongoURI      string

	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET"`
	TokenFormat       string        `env:"TOKEN_FORMAT" envDefault:"jwt"`
	PasetoSecretKey   string        `env:"PASETO_SECRET_KEY"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"10h"`
	EnforceAuth       bool          `env:"ENFORCE_AUTH" envDefault:"false"`

	PaymentSecretKey string `env:"PAYMENT_SECRET_KEY"`
	PaymentCurrency  string `env:"PAYMENT_CURRENCY" envDefault:"usd"`

	CloudinaryURL string   `env:"CLOUDINARY_URL"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Load reads an optional .env file and then the process environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}
	return fromEnvironment()
}

func fromEnvironment() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Port == "" {
		cfg.Port = os.Getenv("port")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	switch cfg.MongoMode {
	case MongoModeAtlas:
		if cfg.MongoUser == "" || cfg.MongoPassword == "" {
			return nil, errors.New("MONGO_MODE 'atlas' requires USER_Name and PASSWORD")
		}
		cfg.MongoURI = atlasURI(cfg.MongoUser, cfg.MongoPassword, cfg.MongoHost)
	case MongoModeLocal:
		cfg.MongoURI = cfg.MongoURILocal
	case MongoModeMemory:
	default:
		return nil, fmt.Errorf("unknown MONGO_MODE %q", cfg.MongoMode)
	}

	switch cfg.TokenFormat {
	case TokenFormatJWT:
		if cfg.AccessTokenSecret == "" {
			return nil, errors.New("TOKEN_FORMAT 'jwt' requires ACCESS_TOKEN_SECRET")
		}
	case TokenFormatPaseto:
		if len(cfg.PasetoSecretKey) != 32 {
			return nil, errors.New("PASETO_SECRET_KEY must be 32 characters long")
		}
	default:
		return nil, fmt.Errorf("unknown TOKEN_FORMAT %q", cfg.TokenFormat)
	}

	return cfg, nil
}

func atlasURI(user, password, host string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, password),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}
