package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"homework-groups-go/config"
	"homework-groups-go/db"
	"homework-groups-go/handlers"
	"homework-groups-go/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default "+config.DefaultConfigFile+" if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis Client
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := db.InitializeRedisClient(ctx, cfg.Redis)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize plan store: %v", err)
	}
	defer redisClient.Close()

	// Create Redis Service
	redisService := db.NewRedisService(redisClient)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector, err := metrics.NewPrometheus(registry, cfg.Server.MetricsPrefix)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Create API Handler (injecting the service)
	apiHandler := handlers.NewAPIHandler(redisService, collector, cfg.Grouping, cfg.Workbook)

	// Initialize Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	// Setup API routes
	apiHandler.RegisterRoutes(router.Group("/api"))
	router.GET(cfg.Server.MetricsPath, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	log.Printf("Starting server on %s (%d groups of %d-%d TAs)",
		cfg.Server.Addr, cfg.Grouping.NumGroups, cfg.Grouping.MinGroupSize, cfg.Grouping.MaxGroupSize)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
