package app

import (
	"database/sql"
	"fmt"
	"log"

	"leadflow/internal/config"
	"leadflow/internal/handlers"
	"leadflow/internal/pdf"
	"leadflow/internal/repositories"
	"leadflow/internal/routes"
	"leadflow/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "leadflow/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB: lead store (read-write) ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open lead store: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close lead store: %v", err)
		}
	}()

	// === DB: external customer store (read-only, owned by another system) ===
	customerDB, err := sql.Open("postgres", cfg.CustomerDatabase.DSN)
	if err != nil {
		log.Fatal("failed to open customer store: ", err)
	}
	defer func() {
		if err := customerDB.Close(); err != nil {
			log.Printf("failed to close customer store: %v", err)
		}
	}()

	// === Repos ===
	leadRepo := repositories.NewLeadRepository(db)
	batchRepo := repositories.NewUploadBatchRepository(db)
	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(customerDB)

	// === Services ===
	checker := services.NewDuplicateChecker(leadRepo)
	matcher := services.NewMatcher(customerRepo)
	ingestion := services.NewIngestionService(
		leadRepo, batchRepo, checker, matcher,
		cfg.Quality.SalaryThreshold, cfg.Quality.Campaigns,
	)
	if cfg.Email.SMTPHost != "" && len(cfg.Email.Recipients) > 0 {
		ingestion.SetMailer(services.NewEmailService(
			cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword, cfg.Email.FromEmail, cfg.Email.Recipients,
		))
	}
	if cfg.Telegram.BotToken != "" {
		notifier, err := services.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("telegram notifier disabled: %v", err)
		} else {
			ingestion.SetNotifier(notifier)
		}
	}
	leadService := services.NewLeadService(leadRepo)
	historyService := services.NewHistoryService(batchRepo, leadRepo)
	reportService := services.NewReportService(leadRepo, leadRepo, customerRepo, matcher)
	reportPDF := pdf.NewGenerator(cfg.Reports.Dir)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userRepo, []byte(cfg.Auth.JWTSecret))
	uploadHandler := handlers.NewUploadHandler(ingestion, cfg.Upload.MaxSizeMB)
	leadHandler := handlers.NewLeadHandler(leadService)
	batchHandler := handlers.NewBatchHandler(historyService)
	reportHandler := handlers.NewReportHandler(reportService, reportPDF, cfg.Quality.SalaryThreshold)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(router, authHandler, uploadHandler, leadHandler, batchHandler, reportHandler, []byte(cfg.Auth.JWTSecret))

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
