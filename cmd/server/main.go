package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/linkedin-outreach/internal/ai"
	"github.com/ignite/linkedin-outreach/internal/api"
	"github.com/ignite/linkedin-outreach/internal/apify"
	"github.com/ignite/linkedin-outreach/internal/config"
	"github.com/ignite/linkedin-outreach/internal/pkg/distlock"
	"github.com/ignite/linkedin-outreach/internal/repository/postgres"
	"github.com/ignite/linkedin-outreach/internal/serper"
	"github.com/ignite/linkedin-outreach/internal/service/campaign"
	"github.com/ignite/linkedin-outreach/internal/service/discovery"
	"github.com/ignite/linkedin-outreach/internal/service/enrichment"
	"github.com/ignite/linkedin-outreach/internal/service/message"
	"github.com/ignite/linkedin-outreach/internal/service/queue"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
)

func main() {
	log.Println("Starting outreach API server...")

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	// Repositories
	campaignRepo := postgres.NewCampaignRepo(db)
	prospectRepo := postgres.NewProspectRepo(db)
	messageRepo := postgres.NewMessageRepo(db)
	queueRepo := postgres.NewQueueRepo(db)

	// Providers
	searchClient := serper.NewClient(cfg.Serper)
	apifyClient := apify.NewClient(cfg.Apify)
	crawler := apify.NewProfileCollector(apifyClient, cfg.Apify)
	sender := apify.NewMessageSender(apifyClient, cfg.Apify)
	chain := ai.NewChain(
		ai.NewOpenAI(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel, cfg.AI.Timeout()),
		ai.NewHuggingFace(cfg.AI.HFKey, cfg.AI.HFModel, cfg.AI.Timeout()),
	)

	// Optional Redis lock around queue passes
	var locker queue.Locker
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		locker = distlock.NewRedisLock(rdb, "process-queue", cfg.Queue.LockTTL())
		log.Printf("Queue lock enabled (redis %s)", cfg.Redis.Addr)
	}

	// Services
	discoverySvc := discovery.NewService(campaignRepo, prospectRepo, searchClient, crawler,
		cfg.Serper.ResultsPerQuery, cfg.Discovery.MaxPerCampaign)
	enrichmentSvc := enrichment.NewService(prospectRepo, chain)
	generator, err := message.NewGenerator(chain)
	if err != nil {
		log.Fatalf("Failed to build message templates: %v", err)
	}
	queueSvc := queue.NewService(queueRepo, sender, locker)
	dashboardSvc := campaign.NewService(campaignRepo, prospectRepo, messageRepo, queueRepo).
		WithProfiles(postgres.NewProfileRepo(db))

	handlers := api.NewHandlers(discoverySvc, enrichmentSvc, generator, queueSvc, dashboardSvc)
	router := api.SetupRoutes(handlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
