package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanaramPradeep/crypto-tracker/api"
	"github.com/DanaramPradeep/crypto-tracker/cache"
	"github.com/DanaramPradeep/crypto-tracker/chart"
	"github.com/DanaramPradeep/crypto-tracker/coingecko"
	"github.com/DanaramPradeep/crypto-tracker/config"
	"github.com/DanaramPradeep/crypto-tracker/core"
	"github.com/DanaramPradeep/crypto-tracker/events"
	"github.com/DanaramPradeep/crypto-tracker/metrics"
	"github.com/DanaramPradeep/crypto-tracker/prefs"
	"github.com/DanaramPradeep/crypto-tracker/refresh"
	"github.com/DanaramPradeep/crypto-tracker/store"
)

func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	prefsStore, err := prefs.NewStore(cfg.Prefs.GetFile())
	if err != nil {
		log.Fatal("Error loading preferences:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping services...")
		cancel()
	}()

	subscriptions := events.NewSubscriptionManager()
	viewStore := store.NewStore(prefsStore, subscriptions)

	refreshClient := coingecko.NewHTTPClient(cfg, metrics.NewMetricsWriter(metrics.ServiceRefresh))
	chartClient := coingecko.NewHTTPClient(cfg, metrics.NewMetricsWriter(metrics.ServiceChart))

	chartCache := cache.NewGoCache(cfg.Chart.GetCacheTTL(), 10*time.Minute)
	chartService := chart.NewService(chartCache, cfg, chartClient)

	controller := refresh.NewController(cfg, refreshClient, viewStore, subscriptions)

	server := api.New(cfg.Server.GetPort(), viewStore, controller, chartService, prefsStore, subscriptions)

	registry := core.NewRegistry()
	registry.Register(chartService)
	registry.Register(controller)
	registry.Register(server)

	if err := registry.StartAll(ctx); err != nil {
		log.Fatal("Failed to start services:", err)
	}

	<-ctx.Done()
	registry.StopAll()
}
