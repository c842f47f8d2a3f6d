package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/encodeous/tint"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	slogmulti "github.com/samber/slog-multi"

	"github.com/Ruthvikr01/Route-Navigator/handlers"
	"github.com/Ruthvikr01/Route-Navigator/models"
	"github.com/Ruthvikr01/Route-Navigator/preprocessing"
	"github.com/Ruthvikr01/Route-Navigator/services"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildLogger writes tinted logs to stderr and, when LOG_FILE is set, fans
// out plain text logs to that file as well.
func buildLogger(level slog.Level, logFile string) (*slog.Logger, error) {
	sinks := []slog.Handler{
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slogmulti.Fanout(sinks...)), nil
}

func main() {
	// missing .env is fine, the defaults below apply
	_ = godotenv.Load()

	logger, err := buildLogger(parseLogLevel(getenv("LOG_LEVEL", "info")), os.Getenv("LOG_FILE"))
	if err != nil {
		slog.Error("could not set up logging", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	dataDir := getenv("DATA_DIR", "data")

	cities, err := preprocessing.LoadCities(filepath.Join(dataDir, "cities.csv"))
	if err != nil {
		logger.Error("failed to load cities", "err", err)
		os.Exit(1)
	}
	conns, err := preprocessing.LoadConnections(filepath.Join(dataDir, "edges.csv"))
	if err != nil {
		logger.Error("failed to load edges", "err", err)
		os.Exit(1)
	}
	var risks []models.RiskRecord
	if risks, err = preprocessing.LoadWeatherRisks(filepath.Join(dataDir, "weather_risk.csv")); err != nil {
		logger.Warn("weather risk data unavailable, routes will carry no travel date", "err", err)
		risks = nil
	}

	graph, riskTable := preprocessing.BuildNetwork(logger, cities, conns, risks)
	logger.Info("network loaded",
		"cities", graph.LocationCount(),
		"connections", graph.ConnectionCount(),
		"risk_dates", len(riskTable.Dates()),
	)

	routeService := services.NewRouteService(graph, riskTable)
	h := handlers.NewRouteHandler(routeService)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	r.Use(cors.New(config))

	h.RegisterRoutes(r)

	port := getenv("PORT", "8080")
	logger.Info("route navigator listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
