// Command minfraud submits transaction records to the fraud-scoring web
// service from the command line.
//
// Usage:
//
//	minfraud score|insights|factors <record.json>
//	minfraud report <report.json>
//	minfraud audit [limit]
//
// Configuration comes from config.yaml and MINFRAUD_-prefixed environment
// variables; see internal/config.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/tjfontaine/minfraud-go/internal/audit"
	"github.com/tjfontaine/minfraud-go/internal/config"
	"github.com/tjfontaine/minfraud-go/internal/telemetry"
	"github.com/tjfontaine/minfraud-go/pkg/minfraud"
	"github.com/tjfontaine/minfraud-go/pkg/record"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// Initialize OpenTelemetry
	shutdown, err := telemetry.InitTracer("minfraud-cli", os.Stderr, logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg, logger, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: minfraud score|insights|factors|report <file.json>")
	fmt.Fprintln(os.Stderr, "       minfraud audit [limit]")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string, args []string) error {
	if command == "audit" {
		return runAudit(ctx, cfg, args)
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	var store *audit.Store
	if cfg.Audit.Path != "" {
		store, err = audit.New(cfg.Audit.Path)
		if err != nil {
			return fmt.Errorf("failed to open audit log: %w", err)
		}
		defer store.Close()
	}

	if len(args) != 1 {
		usage()
		return fmt.Errorf("%s requires exactly one input file", command)
	}

	switch command {
	case "score", "insights", "factors":
		return runTransaction(ctx, client, store, command, args[0])
	case "report":
		return runReport(ctx, client, store, args[0])
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func newClient(cfg *config.Config, logger *slog.Logger) (*minfraud.Client, error) {
	opts := []minfraud.ClientOption{
		minfraud.WithHost(cfg.Service.Host),
		minfraud.WithLogger(logger),
	}
	if cfg.Service.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Service.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid service.timeout: %w", err)
		}
		opts = append(opts, minfraud.WithTimeout(timeout))
	}
	if len(cfg.Service.Locales) > 0 {
		opts = append(opts, minfraud.WithLocales(cfg.Service.Locales...))
	}
	if cfg.Service.Proxy != "" {
		proxy, err := url.Parse(cfg.Service.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid service.proxy: %w", err)
		}
		opts = append(opts, minfraud.WithProxy(proxy))
	}
	if cfg.Service.HashEmail {
		opts = append(opts, minfraud.WithEmailHashing())
	}
	if cfg.Service.SkipValidation {
		opts = append(opts, minfraud.WithoutValidation())
	}

	return minfraud.NewClient(cfg.Account.ID, cfg.Account.LicenseKey, opts...), nil
}

func runTransaction(ctx context.Context, client *minfraud.Client, store *audit.Store, endpoint, path string) error {
	var tx record.Transaction
	if err := readJSON(path, &tx); err != nil {
		return err
	}

	entry := &audit.Entry{Endpoint: endpoint, Status: "ok"}
	if tx.Event != nil && tx.Event.TransactionID != nil {
		entry.TransactionID = *tx.Event.TransactionID
	}

	start := time.Now()
	var result any
	var err error
	switch endpoint {
	case "score":
		var score *minfraud.Score
		if score, err = client.Score(ctx, &tx); err == nil {
			entry.RiskScore = score.RiskScore
			result = score
		}
	case "insights":
		var insights *minfraud.Insights
		if insights, err = client.Insights(ctx, &tx); err == nil {
			entry.RiskScore = insights.RiskScore
			result = insights
		}
	case "factors":
		var factors *minfraud.Factors
		if factors, err = client.Factors(ctx, &tx); err == nil {
			entry.RiskScore = factors.RiskScore
			result = factors
		}
	}
	entry.Duration = time.Since(start)

	if err != nil {
		recordFailure(ctx, store, entry, err)
		return err
	}
	recordEntry(ctx, store, entry)

	return writeJSON(os.Stdout, result)
}

func runReport(ctx context.Context, client *minfraud.Client, store *audit.Store, path string) error {
	var rep record.Report
	if err := readJSON(path, &rep); err != nil {
		return err
	}

	entry := &audit.Entry{Endpoint: "report", Status: "ok"}
	if rep.TransactionID != nil {
		entry.TransactionID = *rep.TransactionID
	}

	start := time.Now()
	err := client.ReportTransaction(ctx, &rep)
	entry.Duration = time.Since(start)

	if err != nil {
		recordFailure(ctx, store, entry, err)
		return err
	}
	recordEntry(ctx, store, entry)

	fmt.Println("report accepted")
	return nil
}

func runAudit(ctx context.Context, cfg *config.Config, args []string) error {
	if cfg.Audit.Path == "" {
		return fmt.Errorf("audit.path is not configured")
	}

	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid limit %q: %w", args[0], err)
		}
		limit = n
	}

	store, err := audit.New(cfg.Audit.Path)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer store.Close()

	entries, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-8s  %-5s", e.CreatedAt.Format(time.RFC3339), e.Endpoint, e.Status)
		if e.RiskScore != nil {
			line += fmt.Sprintf("  risk=%.2f", *e.RiskScore)
		}
		if e.TransactionID != "" {
			line += "  txn=" + e.TransactionID
		}
		if e.ErrorKind != "" {
			line += fmt.Sprintf("  %s: %s", e.ErrorKind, e.ErrorMessage)
		}
		fmt.Println(line)
	}
	return nil
}

func recordFailure(ctx context.Context, store *audit.Store, entry *audit.Entry, err error) {
	entry.Status = "error"
	var merr *minfraud.Error
	if errors.As(err, &merr) {
		entry.ErrorKind = string(merr.Kind)
		entry.ErrorMessage = merr.Message
	} else {
		entry.ErrorMessage = err.Error()
	}
	recordEntry(ctx, store, entry)
}

func recordEntry(ctx context.Context, store *audit.Store, entry *audit.Entry) {
	if store == nil {
		return
	}
	if err := store.Record(ctx, entry); err != nil {
		slog.Warn("failed to record audit entry", slog.String("error", err.Error()))
	}
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	// Unknown fields in the input file are almost always typos; fail loudly
	// instead of silently dropping them.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
