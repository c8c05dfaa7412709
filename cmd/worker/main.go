package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/linkedin-outreach/internal/apify"
	"github.com/ignite/linkedin-outreach/internal/config"
	"github.com/ignite/linkedin-outreach/internal/repository/postgres"
	"github.com/ignite/linkedin-outreach/internal/serper"
	"github.com/ignite/linkedin-outreach/internal/service/discovery"
	_ "github.com/lib/pq"
)

func main() {
	log.Println("Starting autodiscovery worker...")

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

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	campaignRepo := postgres.NewCampaignRepo(db)
	prospectRepo := postgres.NewProspectRepo(db)
	searchClient := serper.NewClient(cfg.Serper)
	apifyClient := apify.NewClient(cfg.Apify)
	crawler := apify.NewProfileCollector(apifyClient, cfg.Apify)

	svc := discovery.NewService(campaignRepo, prospectRepo, searchClient, crawler,
		cfg.Serper.ResultsPerQuery, cfg.Discovery.MaxPerCampaign)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interval := cfg.Discovery.Interval()
	log.Printf("Autodiscovery every %s across active campaigns", interval)

	go func() {
		run := func() {
			res, err := svc.Autodiscover(ctx, discovery.AutodiscoverInput{})
			if err != nil {
				log.Printf("Autodiscovery pass failed: %v", err)
				return
			}
			log.Printf("Autodiscovery pass: %d prospects across %d campaigns",
				res.TotalInserted, len(res.Details))
		}
		run()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down worker...")
	cancel()
	time.Sleep(time.Second)
	log.Println("Worker stopped")
}
