package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"veriwork/internal/cache"
	"veriwork/internal/config"
	"veriwork/internal/db"
	"veriwork/internal/extract"
	"veriwork/internal/handlers"
	"veriwork/internal/llm"
	"veriwork/internal/ocr"
	"veriwork/internal/router"
	"veriwork/internal/store"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL env var is required")
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY env var is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	var engine ocr.Engine
	switch cfg.OCREngine {
	case config.EngineTesseract:
		engine = ocr.NewTesseractEngine()
	case config.EngineVision:
		vis, err := ocr.NewVisionEngine(ctx, cfg.GoogleCredentials)
		if err != nil {
			log.Fatalf("vision client: %v", err)
		}
		defer vis.Close()
		engine = vis
	default:
		log.Fatalf("unknown OCR_ENGINE %q", cfg.OCREngine)
	}

	gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	defer gemini.Close()

	st := store.New(gdb)
	extractor := &extract.Controller{
		OCR:            engine,
		LLM:            gemini,
		Store:          st,
		Cache:          cache.New(cfg.RedisAddr, cache.DefaultTTL),
		PersonalDir:    cfg.PersonalDir,
		EducationalDir: cfg.EducationalDir,
		MinTextLength:  cfg.OCRMinTextLength,
	}

	h := &handlers.Handler{
		Store:          st,
		Extractor:      extractor,
		NameThreshold:  cfg.NameThreshold,
		ShareSecret:    []byte(cfg.ShareSecret),
		BaseURL:        cfg.BaseURL,
		MaxUploadBytes: cfg.UploadMaxSizeMB << 20,
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.RegisterRouter(h),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("serving on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}
