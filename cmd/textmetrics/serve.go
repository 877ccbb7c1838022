package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/tsawler/textmetrics"
)

type server struct {
	logger   zerolog.Logger
	lexicons textmetrics.Lexicons
	fetcher  *textmetrics.Fetcher
}

func runServe(args []string, cfg *Config, logger zerolog.Logger) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", "", "listen address (overrides config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: textmetrics serve [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	lex, err := textmetrics.LoadLexicons(cfg.Lexicons.Positive, cfg.Lexicons.Negative, cfg.Lexicons.StopWords)
	if err != nil {
		logger.Error().Err(err).Msg("loading lexicons")
		return 2
	}

	s := &server{
		logger:   logger,
		lexicons: lex,
		fetcher: textmetrics.NewFetcher(
			textmetrics.WithUserAgent(cfg.Fetch.UserAgent),
			textmetrics.WithHTTPClient(&http.Client{Timeout: cfg.Fetch.Timeout}),
			textmetrics.WithMaxBody(cfg.Fetch.MaxBodyMB<<20),
		),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	listen := cfg.Addr()
	if *addr != "" {
		listen = *addr
	}
	srv := &http.Server{
		Addr:         listen,
		Handler:      s.withLogging(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info().Str("addr", listen).Msg("listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server failed")
			return 1
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
			return 1
		}
	}
	return 0
}

type analyzeRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	text := req.Text
	source := "text"
	switch {
	case req.Text != "" && req.URL != "":
		s.writeError(w, http.StatusBadRequest, errors.New("provide text or url, not both"))
		return
	case req.URL != "":
		fetched, err := s.fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, textmetrics.ErrNotText) || errors.Is(err, textmetrics.ErrEmptyText) {
				status = http.StatusUnprocessableEntity
			}
			s.writeError(w, status, err)
			return
		}
		text = fetched
		source = req.URL
	}

	if strings.TrimSpace(text) == "" {
		s.writeError(w, http.StatusBadRequest, textmetrics.ErrEmptyText)
		return
	}

	if !textmetrics.LooksEnglish(text) {
		s.logger.Warn().Str("source", source).Msg("input does not look like English prose")
	}

	record := textmetrics.Analyze(text, s.lexicons)
	s.writeJSON(w, http.StatusOK, Report{Source: source, Metrics: record})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encoding response")
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]any{
		"error": map[string]string{"message": err.Error()},
	})
}

func (s *server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
