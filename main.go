// @title Dresscollections API
// @version 1.0
// @description Storefront catalog, CMS and shared dev catalog endpoints
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/controllers/cms/catalog_controller"
	"github.com/developer2iverto/Dresscollections-sub000/controllers/cms/product_controller"
	_ "github.com/developer2iverto/Dresscollections-sub000/docs"
	"github.com/developer2iverto/Dresscollections-sub000/middleware"
	"github.com/developer2iverto/Dresscollections-sub000/routes/cms_routes"
	"github.com/developer2iverto/Dresscollections-sub000/routes/dev_routes"
	"github.com/developer2iverto/Dresscollections-sub000/routes/ecommerce_routes"
	"github.com/developer2iverto/Dresscollections-sub000/services"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
	"github.com/developer2iverto/Dresscollections-sub000/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.AppEnv)

	// Connect to DB
	config.InitDB(cfg)
	// Redis connection
	config.ConnectRedis(cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTExpiry)
	if err := services.InitJWTService(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	if cfg.CloudinaryCloudName != "" {
		if err := product_controller.InitCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️ Cloudinary not configured, media uploads disabled")
	}

	catalog := initCatalog(cfg)

	if client := config.NewS3Client(context.Background(), cfg); client != nil {
		catalog_controller.InitArchive(stores.NewS3CatalogArchive(client, cfg.CatalogBackupBucket, ""))
		log.Println("✅ Catalog backups enabled")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))

	api := router.Group("/api/v1")

	// Admin auth (at /api/v1/admin prefix)
	cms_routes.SetupAdminRoutes(api)

	// CMS routes (rate limited, at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(config.RedisClient, cfg.RateLimit, time.Minute))
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupOfferRoutes(adminGroup)
	cms_routes.SetupCatalogRoutes(adminGroup)
	log.Println("✅ CMS routes registered")

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)

	if cfg.DevCatalogEnabled && !cfg.IsProduction() {
		dev_routes.SetupDevRoutes(api)
		log.Println("✅ Dev catalog routes registered")
	}

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️ server shutdown: %v", err)
	}

	catalog.Flush()
	config.DisconnectMongo()
	config.CloseDB()
	log.Println("✅ Server exited")
}

// initCatalog selects the remote store, hydrates the catalog and installs it
// as the shared catalog service.
func initCatalog(cfg *config.Config) *services.CatalogService {
	remote := newRemoteStore(cfg)
	local := stores.NewRedisCatalogStore(config.RedisClient, stores.DefaultLocalCatalogKey)

	bridge := services.NewPersistenceBridge(remote, local, cfg.RemoteSyncTimeout)
	catalog := services.NewCatalogService(bridge, cfg.MinPerCategory)

	ctx, cancel := config.WithCustomTimeout(cfg.RemoteSyncTimeout + 5*time.Second)
	defer cancel()
	if err := catalog.Hydrate(ctx); err != nil {
		log.WithError(err).Error("❌ catalog hydration failed, serving an empty catalog")
	} else {
		status := catalog.Status()
		log.Printf("✅ Catalog hydrated from %s (%d products)", status.Source, status.ProductCount)
	}

	services.InitCatalogService(catalog)
	return catalog
}

func newRemoteStore(cfg *config.Config) stores.RemoteCatalogStore {
	switch cfg.CatalogRemote {
	case "mongo":
		db := config.ConnectMongo(cfg)
		return stores.NewMongoCatalogStore(db.Collection("dev_catalog"))
	case "memory":
		log.Println("⚠️ Using in-memory catalog store, changes are not shared")
		return stores.NewMemoryCatalogStore()
	default:
		config.InitCatalogPool(cfg)
		store := stores.NewPostgresCatalogStore(config.CatalogDB)
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("❌ failed to prepare dev catalog table: %v", err)
		}
		return store
	}
}
