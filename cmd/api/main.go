package main

import (
	"context"
	"time"

	"pashumitra/internal/animal"
	"pashumitra/internal/auth"
	"pashumitra/internal/catalog"
	"pashumitra/internal/config"
	"pashumitra/internal/db"
	"pashumitra/internal/middleware"
	"pashumitra/internal/ration"
	"pashumitra/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pgDB.Close()
	log.Info("connected to postgres")

	// ───────────────────────── CATALOG ─────────────────────────
	// Reference tables are loaded once here and never mutated afterwards.
	var src catalog.Source
	switch cfg.Catalog.Source {
	case config.CatalogFile:
		src = catalog.NewFileSource(cfg.Catalog.FilePath)
	case config.CatalogRemote:
		src = catalog.NewRemoteSource(cfg.Catalog.RemoteURL)
	case config.CatalogPostgres:
		src = catalog.NewPostgresSource(pgDB)
	default:
		src = catalog.NewStaticSource()
	}

	cat, err := catalog.Load(ctx, src)
	if err != nil {
		log.Fatal("catalog load failed", zap.Error(err), zap.String("source", string(cfg.Catalog.Source)))
	}
	log.Info("nutrition catalog loaded",
		zap.String("source", string(cfg.Catalog.Source)),
		zap.Int("statuses", len(cat.Statuses())),
		zap.Int("feeds", len(cat.Feeds())),
	)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/guest-session", authHandler.GuestSession)
	}

	// ───────────────────────── RATION CALCULATOR ─────────────────────────
	rationService := ration.NewService(cat)
	rationHandler := ration.NewHandler(rationService)

	rationGroup := r.Group("/api/ration")
	{
		// reference tables are public so forms can populate before login
		rationGroup.GET("/statuses", rationHandler.ListStatuses)
		rationGroup.GET("/feeds", rationHandler.ListFeeds)

		protected := rationGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/calculate", rationHandler.Calculate)
			protected.POST("/export", rationHandler.Export)
			protected.POST("/export/pdf", rationHandler.ExportPDF)
		}
	}

	// ───────────────────────── ANIMAL REGISTER ─────────────────────────
	animalRepo := animal.NewPostgresRepository(pgDB)
	animalHandler := animal.NewHandler(animal.NewService(animalRepo))

	animals := r.Group("/api/animals")
	animals.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleFarmer, auth.RoleParavet, auth.RoleVeterinarian, auth.RoleAdmin),
	)
	{
		animals.POST("", animalHandler.Create)
		animals.GET("", animalHandler.List)
		animals.GET("/:id", animalHandler.Get)
		animals.PUT("/:id", animalHandler.Update)
		animals.DELETE("/:id", animalHandler.Delete)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Info("API running", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
