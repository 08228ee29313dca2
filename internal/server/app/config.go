package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is loaded once at startup and injected everywhere; nothing reads the
// environment after this point.
type Config struct {
	Port   int    `env:"PORT" envDefault:"3001"`
	Env    string `env:"ENV" envDefault:"dev"`
	Issuer string `env:"TOTP_ISSUER" envDefault:"Encuestas"`

	// Distinct signing secrets for the two token families.
	JWTSecret        string `env:"JWT_SECRET,required"`
	JWTRefreshSecret string `env:"JWT_REFRESH_SECRET,required"`

	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"24h"`

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"encuestas.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// Object storage for professor images. "disk" keeps files under
	// UploadsDir; "minio" talks to an S3-compatible endpoint.
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"disk"`
	UploadsDir     string `env:"UPLOADS_DIR" envDefault:"uploads"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"encuestas"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.JWTSecret == cfg.JWTRefreshSecret {
		return Config{}, fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}

	if cfg.StorageBackend == "minio" && cfg.MinioEndpoint == "" {
		return Config{}, fmt.Errorf("STORAGE_BACKEND=minio requires MINIO_ENDPOINT")
	}

	return cfg, nil
}
