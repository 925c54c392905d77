package config

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

var (
	// CatalogDB holds the shared dev catalog row.
	CatalogDB *pgxpool.Pool

	CmsGorm       *gorm.DB
	EcommerceGorm *gorm.DB
)

func InitDB(cfg *Config) {
	initGORM(cfg)
}

// InitCatalogPool connects the pgx pool used by the postgres catalog store.
// It falls back to the CMS database when CATALOG_DB_URL is unset.
func InitCatalogPool(cfg *Config) {
	url := cfg.CatalogDBURL
	if url == "" {
		url = cmsDSN(cfg)
		log.Println("⚠️ CATALOG_DB_URL not set, using the CMS database")
	}

	var err error
	CatalogDB, err = pgxpool.New(context.Background(), url)
	if err != nil {
		log.Fatalf("❌ Unable to connect to catalog database: %v", err)
	}

	if err = CatalogDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Catalog database ping failed: %v", err)
	}

	log.Println("✅ Catalog database connected (pgx)")
}

func initGORM(cfg *Config) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	CmsGorm = openGORM(cmsDSN(cfg), gormLogger, "CMS")
	if err := CmsGorm.AutoMigrate(&models.Admin{}); err != nil {
		log.Fatalf("❌ Failed to migrate CMS database: %v", err)
	}

	ecommerceDSN := cfg.EcommerceDBURL
	if ecommerceDSN == "" {
		ecommerceDSN = "host=localhost user=postgres dbname=dresscollections_ecommerce port=5432 sslmode=disable TimeZone=UTC"
		log.Println("⚠️ ECOMMERCE_DB_URL not set, using local GORM default")
	}
	EcommerceGorm = openGORM(ecommerceDSN, gormLogger, "Ecommerce")
	if err := EcommerceGorm.AutoMigrate(&models.User{}, &models.Address{}); err != nil {
		log.Fatalf("❌ Failed to migrate Ecommerce database: %v", err)
	}
}

func openGORM(dsn string, gormLogger logger.Interface, name string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to %s database with GORM: %v", name, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Printf("✅ %s database connected (GORM)", name)
	return db
}

func cmsDSN(cfg *Config) string {
	if cfg.CmsDBURL != "" {
		return cfg.CmsDBURL
	}
	log.Println("⚠️ CMS_DB_URL not set, using local GORM default")
	return "host=localhost user=postgres dbname=dresscollections_cms port=5432 sslmode=disable TimeZone=UTC"
}

func CloseDB() {
	if CatalogDB != nil {
		CatalogDB.Close()
		log.Println("✅ Catalog database connection closed (pgx)")
	}

	for name, db := range map[string]*gorm.DB{"CMS": CmsGorm, "Ecommerce": EcommerceGorm} {
		if db == nil {
			continue
		}
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Printf("✅ %s database connection closed (GORM)", name)
		}
	}
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
