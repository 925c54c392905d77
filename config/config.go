package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config is read from the environment (and .env when present).
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8081"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`

	CmsDBURL       string `envconfig:"CMS_DB_URL"`
	EcommerceDBURL string `envconfig:"ECOMMERCE_DB_URL"`
	CatalogDBURL   string `envconfig:"CATALOG_DB_URL"`
	RedisURL       string `envconfig:"REDIS_URL" default:"redis://localhost:6379"`

	// CatalogRemote selects the shared dev catalog store: postgres, mongo or memory.
	CatalogRemote     string        `envconfig:"CATALOG_REMOTE" default:"postgres"`
	MongoURI          string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase     string        `envconfig:"MONGO_DATABASE" default:"dresscollections"`
	MinPerCategory    int           `envconfig:"MIN_PRODUCTS_PER_CATEGORY" default:"5"`
	RemoteSyncTimeout time.Duration `envconfig:"REMOTE_SYNC_TIMEOUT" default:"10s"`
	DevCatalogEnabled bool          `envconfig:"DEV_CATALOG_ENABLED" default:"false"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
	RateLimit      int      `envconfig:"RATE_LIMIT" default:"100"`

	CloudinaryCloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `envconfig:"CLOUDINARY_API_SECRET"`

	AWSRegion           string `envconfig:"AWS_REGION" default:"ap-south-1"`
	CatalogBackupBucket string `envconfig:"CATALOG_BACKUP_BUCKET"`
}

var AppConfig *Config

// Load reads the configuration once and stores it in AppConfig.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.CatalogRemote = strings.ToLower(strings.TrimSpace(cfg.CatalogRemote))

	AppConfig = &cfg
	return &cfg, nil
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	if AppConfig == nil {
		cfg, err := Load()
		if err != nil {
			log.Fatalf("❌ invalid configuration: %v", err)
		}
		return cfg
	}
	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
