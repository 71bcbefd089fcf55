package main

//go:generate swag init

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lessycomm/invoicer/config"
	_ "github.com/lessycomm/invoicer/docs"
	"github.com/lessycomm/invoicer/handlers"
	"github.com/lessycomm/invoicer/history"
	"github.com/lessycomm/invoicer/numbering"
	"github.com/lessycomm/invoicer/render"
)

// @title           Invoice Generator API
// @version         1.0.0
// @description     API for generating invoice and receipt PDFs, sequential document numbering, and local document history.
// @host            localhost:8080
// @BasePath        /api

func main() {
	_ = godotenv.Load()

	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Business profile
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Local state: history list and the two counters
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		slog.Error("failed to create data directory", "path", dataDir, "error", err)
		os.Exit(1)
	}

	store, err := history.Open(filepath.Join(dataDir, "history.json"))
	if err != nil {
		slog.Error("failed to open history store", "error", err)
		os.Exit(1)
	}
	slog.Info("history store opened", "path", filepath.Join(dataDir, "history.json"))

	// Shared handler state
	handlers.Cfg = cfg
	handlers.Store = store
	handlers.InvoiceNumbers = numbering.NewInvoiceCounter(filepath.Join(dataDir, "invoice-counter.json"))
	handlers.ReceiptNumbers = numbering.NewReceiptCounter(filepath.Join(dataDir, "receipt-counter.json"))
	handlers.Renderer = render.New(cfg)

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Documents
		r.Post("/invoice", handlers.GenerateDocument)
		r.Post("/preview", handlers.Preview)

		// Receipt numbering and dashboard
		r.Post("/receipt-number", handlers.NextReceiptNumber)
		r.Get("/receipts", handlers.ListReceipts)

		// History
		r.Get("/history", handlers.ListHistory)
		r.Post("/history", handlers.SaveInvoice)
		r.Get("/history/next-number", handlers.NextInvoiceNumber)
		r.Get("/history/latest/download", handlers.DownloadLatest)
		r.Get("/history/{number}", handlers.GetHistoryEntry)
		r.Post("/history/{number}/paid", handlers.MarkPaid)
		r.Post("/history/{number}/pending", handlers.MarkPending)
		r.Post("/history/{number}/duplicate", handlers.DuplicateInvoice)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
