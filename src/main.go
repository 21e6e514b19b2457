package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"crosswarped.com/wordsearch/internal/config"
	"crosswarped.com/wordsearch/internal/function"
	"crosswarped.com/wordsearch/internal/wordbank"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("WORDSEARCH_CONFIG"))
	if err != nil {
		log.Fatalf("config.Load: %v\n", err)
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("cfg.Validate: %v\n", err)
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		log.Fatalf("cfg.Log.Logger: %v\n", err)
	}
	defer logger.Sync()

	var source wordbank.Source
	if project := cfg.Function.BigQueryProject; project != "" {
		client, err := bigquery.NewClient(ctx, project)
		if err != nil {
			logger.Fatal("bigquery.NewClient", zap.Error(err))
		}
		defer client.Close()
		source = wordbank.NewBigQuerySource(client, cfg.Function.BigQueryTable, cfg.Function.BigQueryLocation)
		logger.Info("word scopes enabled", zap.String("table", cfg.Function.BigQueryTable))
	}

	metrics, err := function.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("function.NewMetrics", zap.Error(err))
	}
	handler := function.New(cfg, source, logger, metrics)

	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/generate-grid", handler.ServeHTTP); err != nil {
		logger.Fatal("funcframework.RegisterHTTPFunctionContext", zap.Error(err))
	}
	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/metrics", promhttp.Handler().ServeHTTP); err != nil {
		logger.Fatal("funcframework.RegisterHTTPFunctionContext", zap.Error(err))
	}

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	logger.Info("starting", zap.String("host", hostname), zap.String("port", port))
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		logger.Fatal("funcframework.StartHostPort", zap.Error(err))
	}
}
