package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/pathwise/internal/cli"
	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/gateway"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/logger"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/alexanderramin/pathwise/internal/source"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real env vars always win.
	_ = godotenv.Load()

	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := service.NewSQLStore(
		repository.NewSQLiteCurriculumRepo(database),
		db.NewSQLiteUnitOfWork(database),
	)

	srcCfg := source.LoadConfig()
	src, err := source.New(srcCfg, source.Deps{LLMLog: os.Stderr})
	if err != nil {
		return err
	}

	svcCfg := service.LoadConfig()
	var useCaseLog io.Writer
	if svcCfg.LogUseCases {
		useCaseLog = os.Stderr
	}

	app := &cli.App{Store: store}
	app.Manager = service.NewManager(src,
		service.WithStore(store),
		service.WithNotifier(app),
		service.WithObserver(service.NewLogUseCaseObserver(useCaseLog)),
		service.WithGenerateTimeout(svcCfg.GenerateTimeout),
		service.WithSourceName(string(srcCfg.Mode)),
	)
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.Serve = serveGateway

	return cli.NewRootCmd(app).Execute()
}

// serveGateway runs the /generate-plan HTTP server until ctx is done.
func serveGateway(ctx context.Context) error {
	cfg := gateway.LoadServerConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()
	log = log.With("component", "gateway")

	llmCfg := llm.LoadConfig()
	if !llmCfg.HasAPIKey() {
		log.Warn("no LLM API key configured; upstream calls will fail with upstream_auth_failed",
			"endpoint", llmCfg.Endpoint)
	}
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.ObserverFunc(func(e llm.CallEvent) {
			kv := []any{"task", string(e.Task), "model", e.Model, "attempts", e.Attempts, "latency_ms", e.Latency.Milliseconds()}
			if e.Success() {
				log.Info("llm_call", kv...)
				return
			}
			log.Warn("llm_call", append(kv, "code", e.Code(), "error", e.Err)...)
		})
	}
	planner := gateway.NewPlanner(llm.NewChatClient(llmCfg, observer), gateway.ResourceMapping{Kind: cfg.ResourceKind})

	return gateway.NewServer(cfg, planner, log).Run(ctx)
}
