package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontolint/check"
	"github.com/c360studio/ontolint/config"
	"github.com/c360studio/ontolint/publish"
)

func watchCmd() *cobra.Command {
	var checkNames []string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run checks whenever ontology documents change",
		Long: `Watch resolves the configured ontology paths, runs the checks once,
and then re-runs them whenever a watched document is written. When
watch.metrics_addr is configured, a Prometheus metrics endpoint is
served at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(checkNames)
		},
	}

	cmd.Flags().StringSliceVar(&checkNames, "checks", nil, "Check names to run (default: all)")

	return cmd
}

func runWatch(checkNames []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewLoader(nil).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(checkNames) == 0 {
		checkNames = cfg.Checks.Enabled
	}

	files, err := expandPaths(cfg.Paths.Ontologies)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no ontology documents matched the configured paths")
	}

	if cfg.Watch.MetricsAddr != "" {
		go serveMetrics(cfg.Watch.MetricsAddr)
	}

	var nc *nats.Conn
	if cfg.Publish.URL != "" {
		nc, err = publish.Connect(cfg.Publish.URL)
		if err != nil {
			return err
		}
		defer nc.Close()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", file, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	runner := check.NewRunner(nil, slog.Default())
	runAll := func() {
		for _, file := range files {
			start := time.Now()
			run, err := checkFile(runner, file, checkNames)
			if err != nil {
				slog.Error("Failed to check document", "path", file, "error", err)
				runsTotal.WithLabelValues("error").Inc()
				continue
			}
			printRun(run)
			observeRun(run, time.Since(start))
			if err := publish.Run(nc, cfg.Publish.Subject, run); err != nil {
				slog.Warn("Failed to publish check run", "run_id", run.ID, "error", err)
			}
		}
	}

	debounce := cfg.Watch.DebounceDuration()
	slog.Info("Watching ontology documents",
		"files", len(files), "dirs", len(dirs), "debounce", debounce)
	runAll()

	// Debounce timer, armed by events and drained before reuse.
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutting down watch mode")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Document changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		case <-timer.C:
			runAll()
		}
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	slog.Info("Serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Metrics server stopped", "error", err)
	}
}
