package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/me/agrirent/internal/api"
	"github.com/me/agrirent/internal/config"
	"github.com/me/agrirent/internal/logging"
	"github.com/me/agrirent/internal/session"
	"github.com/me/agrirent/internal/ui"
)

func main() {
	defaults := config.DefaultConsoleConfig()

	configFile := flag.String("config", "", "Path to config file (default ~/.agrirent/config.yaml)")
	addr := flag.String("addr", defaults.Addr, "Listen address")
	apiURL := flag.String("api-url", defaults.APIURL, "Backend API base URL")
	sessionStore := flag.String("session-store", defaults.SessionStore, "Session store (file, sqlite, memory)")
	sessionPath := flag.String("session-path", "", "Session store path (default ~/.agrirent/session.{json,db})")
	logLevel := flag.String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", defaults.LogFormat, "Log format (text, json)")
	logFile := flag.String("log-file", "", "Also write logs to this file, rotated")
	secureCookies := flag.Bool("secure-cookies", false, "Set the Secure attribute on cookies (serve behind HTTPS)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")

	flag.Parse()

	cfg := defaults
	path, optional := *configFile, false
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		path, optional = p, true
	}
	if err := config.LoadFile(path, &cfg, optional); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv(os.Getenv)

	// Explicit flags win over the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "api-url":
			cfg.APIURL = *apiURL
		case "session-store":
			cfg.SessionStore = *sessionStore
		case "session-path":
			cfg.SessionPath = *sessionPath
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "log-file":
			cfg.LogFile = *logFile
		case "secure-cookies":
			cfg.SecureCookies = *secureCookies
		}
	})
	if *debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, logCloser := logging.NewLoggerFromOptions(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, storeCloser, err := config.OpenStore(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open session store: %v\n", err)
		os.Exit(1)
	}
	defer storeCloser.Close()

	// The gate must be restored before the first request is served.
	gate := session.NewGate(st, logger)
	gate.Initialize(ctx)
	if sess := gate.Current(); sess.IsAuthenticated() {
		logger.Info("session restored", "username", sess.User.Username, "role", sess.Role().String())
	}

	client := api.NewClient(cfg.APIURL, gate, cfg.HTTPTimeout, logger)
	console := ui.New(gate, client, logger, ui.Config{Secure: cfg.SecureCookies})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           console.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("console starting", "addr", cfg.Addr, "api_url", cfg.APIURL, "session_store", cfg.SessionStore)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("console failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("console stopped")
}
