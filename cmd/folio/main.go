package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stanjdev/folio"
	"github.com/stanjdev/folio/internal/adapters/cli"
	"github.com/stanjdev/folio/internal/config"
	"github.com/stanjdev/folio/internal/logger"
)

const usage = `Usage: folio <command> [args]

Commands:
  serve          serve pages on FOLIO_ADDR
  export [dir]   write static pages to dir (default FOLIO_EXPORT_DIR)
  check          validate every content definition`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], cli.NewOutput()))
}

func run(ctx context.Context, args []string, output *cli.Output) int {
	if len(args) == 0 {
		output.PrintHeader("Folio")
		output.PrintError("Missing command")
		fmt.Fprintln(output.Writer(), usage)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		output.PrintError("Failed to load config: %v", err)
		return 1
	}

	log, err := logger.New(cfg.LogMode())
	if err != nil {
		output.PrintError("Failed to create logger: %v", err)
		return 1
	}
	defer log.Sync()

	defs, err := folio.LoadProjects(cfg)
	if err != nil {
		output.PrintError("Failed to load content: %v", err)
		return 1
	}

	app, err := folio.New(cfg, log, folio.ProjectRoutes(defs, folio.WithTextExport())...)
	if err != nil {
		output.PrintError("%v", err)
		return 1
	}

	switch args[0] {
	case "serve":
		if err := serve(ctx, cfg, log, app); err != nil {
			output.PrintError("%v", err)
			return 1
		}
		return 0

	case "export":
		dir := cfg.ExportDir
		if len(args) > 1 {
			dir = args[1]
		}
		if out := app.Export(ctx, dir, output); out.Error != nil {
			output.PrintError("%v", out.Error)
			return 1
		}
		output.PrintDone("Export completed successfully")
		return 0

	case "check":
		if out := app.Check(ctx, output); out.Error != nil {
			output.PrintError("%v", out.Error)
			return 1
		}
		return 0

	default:
		output.PrintError("Unknown command %q", args[0])
		fmt.Fprintln(output.Writer(), usage)
		return 1
	}
}

func serve(ctx context.Context, cfg config.Config, log *logger.Logger, app *folio.App) error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Wrap(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving", "addr", cfg.Addr, "routes", len(app.Routes()), "dev", cfg.Dev)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
