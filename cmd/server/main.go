package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/M07maaad/Study-Smart-Project/internal/config"
	"github.com/M07maaad/Study-Smart-Project/internal/db"
	"github.com/M07maaad/Study-Smart-Project/internal/httpserver"
	"github.com/M07maaad/Study-Smart-Project/internal/llm"
	"github.com/M07maaad/Study-Smart-Project/internal/logger"
	"github.com/M07maaad/Study-Smart-Project/internal/service"
	"github.com/M07maaad/Study-Smart-Project/internal/supabase"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	if cfg.LLM.APIKey == "" {
		log.Warn("warning: LLM_API_KEY not set; quiz generation will fail at runtime")
	}
	if cfg.Supabase.URL == "" || cfg.Supabase.AnonKey == "" {
		log.Warn("warning: SUPABASE_URL or SUPABASE_ANON_KEY not set; auth endpoints will return 503")
	}
	if cfg.Supabase.JWTSecret == "" {
		log.Warn("warning: SUPABASE_JWT_SECRET not set; /api/generate-quiz is open")
	}

	sb := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout, nil)

	var store service.CatalogStore = supabase.NewCatalogClient(sb)
	if cfg.Database.URL != "" {
		pool, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer pool.Close()
		store = db.NewRepository(pool)
		log.Info("catalog reads go straight to postgres")
	}

	completer := llm.NewClient(llm.Options{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
	log.Info("llm configured", "model", completer.Model(), "base_url", cfg.LLM.BaseURL)

	srv := httpserver.New(
		cfg,
		service.NewQuizService(completer, cfg.Quiz.QuestionCount, cfg.Quiz.MaxAttempts, log),
		service.NewCatalogService(store),
		service.NewAuthService(supabase.NewAuthClient(sb)),
		log,
	)
	return srv.Run(ctx)
}
