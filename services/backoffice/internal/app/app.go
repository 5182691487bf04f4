package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lv33global/pkg/cache"
	"lv33global/pkg/config"
	"lv33global/pkg/database"
	"lv33global/pkg/logger"
	"lv33global/pkg/s3"
	"lv33global/pkg/storage"
	backofficeHTTP "lv33global/services/backoffice/internal/controller/http"
	"lv33global/services/backoffice/internal/model"
	"lv33global/services/backoffice/internal/repo/persistent"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "lv33global/services/backoffice/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	useCases    *usecase.UseCases
	router      *gin.Engine
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBDriver == config.DriverSQLite || cfg.DBAutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
	}

	a := &App{
		cfg: cfg,
		log: log,
		db:  db,
	}

	var listCache usecase.ListCache
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			// The list cache is optional
			log.Warn("Failed to connect to redis: %v (continuing without list cache)", err)
		} else {
			a.redisClient = redisClient
			listCache = cache.NewListCache(redisClient, cfg.ListCacheTTL, log)
		}
	}

	assets, uploads, err := newAssetStore(cfg, log)
	if err != nil {
		log.Error("Failed to initialize asset storage: %v", err)
		return nil, err
	}

	a.useCases = usecase.NewUseCases(persistent.NewRepositories(db), assets, listCache, cfg.BcryptCost, log)
	a.router = a.newRouter(uploads)
	return a, nil
}

// newAssetStore returns the configured asset backend and the handler that
// serves stored files under /uploads.
func newAssetStore(cfg *config.Config, log *logger.Logger) (usecase.AssetStore, func(*gin.Engine), error) {
	switch cfg.AssetBackend {
	case config.AssetBackendS3:
		client, err := s3.NewClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.EnsureBucket(ctx); err != nil {
			return nil, nil, err
		}
		store := storage.NewS3(client, log)
		return store, func(r *gin.Engine) {
			r.GET(storage.PublicPrefix+"/:name", func(c *gin.Context) {
				c.Redirect(http.StatusFound, store.ObjectURL(c.Param("name")))
			})
		}, nil
	case config.AssetBackendLocal:
		disk, err := storage.NewDisk(cfg.UploadDir, log)
		if err != nil {
			return nil, nil, err
		}
		return disk, func(r *gin.Engine) {
			r.Static(storage.PublicPrefix, disk.Dir())
		}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported asset backend: %s", cfg.AssetBackend)
	}
}

func (a *App) newRouter(uploads func(*gin.Engine)) *gin.Engine {
	gin.SetMode(a.cfg.GinMode)
	r := gin.Default()
	r.MaxMultipartMemory = a.cfg.MaxMultipartMemoryMB << 20

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  a.cfg.CORSAllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uploads(r)

	api := r.Group("/api")
	backofficeHTTP.RegisterRoutes(api, backofficeHTTP.NewHandlers(a.useCases, a.log))

	return r
}

// Handler exposes the configured router.
func (a *App) Handler() http.Handler {
	return a.router
}

// UseCases exposes the wired use cases to the seeding tool.
func (a *App) UseCases() *usecase.UseCases {
	return a.useCases
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.router,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Backoffice service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down backoffice service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if shutdownErr == nil {
		a.log.Info("Backoffice service exited")
	}
	return shutdownErr
}
