package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/config"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/handler"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/repository"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/service"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the store: Postgres when configured, in-memory otherwise.
	var store repository.Store
	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		store = repository.NewPostgresStore(db)
		logger.Info("Using Postgres store")
	} else {
		store = repository.NewMemoryStore()
		logger.Warn("DB_CONN not set, using in-memory store: all data is lost on shutdown")
	}

	// Carts are always in-memory: they live and die with the process.
	carts := repository.NewCartStore()
	catalog := repository.NewCatalog(repository.DefaultProducts())

	var mail *email.Sender
	if cfg.SMTPHost != "" {
		mail = email.NewSender(cfg, logger)
	}

	// Initialize layers
	svc := service.NewService(store, carts, catalog, mail, logger, cfg)
	h := handler.NewHandler(svc, logger, cfg.BaseURL)

	// Setup router
	r := handler.NewRouter(h, []byte(cfg.JWTSecret), logger)

	// Hourly usage report
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		stats, err := svc.Stats(ctx)
		if err != nil {
			logger.Errorf("Failed to collect usage stats: %v", err)
			return
		}
		logger.WithFields(logrus.Fields{
			"users":    stats.Users,
			"posts":    stats.Posts,
			"comments": stats.Comments,
		}).Info("Usage report")
	}); err != nil {
		logger.Fatalf("Failed to schedule usage report: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
