package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"land_valuation/pkg/api/feasibility"
	"land_valuation/pkg/core/config"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg, err := config.Load("config/server.yaml")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	h := feasibility.NewHandler(logger)

	r := mux.NewRouter()
	r.HandleFunc("/api/zoning/presets", h.HandlePresets).Methods("GET", "OPTIONS")
	// Starting values for the input form.
	r.HandleFunc("/api/feasibility/defaults", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg.Defaults)
	}).Methods("GET")
	r.HandleFunc("/api/feasibility/metrics", h.HandleMetrics).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/feasibility/grid", h.HandleGrid).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/feasibility/report", h.HandleReport).Methods("POST", "OPTIONS")

	logger.WithField("port", cfg.Port).Info("API server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
