package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pricehistory/internal/config"
	"pricehistory/internal/prices"
	"pricehistory/internal/reconcile"
	"pricehistory/internal/source"
	"pricehistory/internal/source/tradermade"
	"pricehistory/internal/source/yahoo"
)

// fileFeed wraps a payload dump on disk as a reconcile.Feed. Payloads are
// decoded up front by load; History only hands the decoded payload over.
type fileFeed struct {
	symbol  string
	kind    string
	path    string
	payload source.Payload
}

func (f *fileFeed) Symbol() string { return f.symbol }

func (f *fileFeed) History(context.Context) (source.Payload, error) {
	if f.payload == nil {
		return nil, fmt.Errorf("%s: payload not loaded", f.path)
	}
	return f.payload, nil
}

func (f *fileFeed) load() error {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.path, err)
	}
	payload, err := decodePayload(f.kind, b)
	if err != nil {
		return fmt.Errorf("decode %s: %w", f.path, err)
	}
	f.payload = payload
	return nil
}

func decodePayload(kind string, b []byte) (source.Payload, error) {
	switch kind {
	case "chart":
		var r yahoo.Result
		if err := json.Unmarshal(b, &r); err != nil {
			return nil, err
		}
		return r, nil
	case "history":
		var h yahoo.HistoryResponse
		if err := json.Unmarshal(b, &h); err != nil {
			return nil, err
		}
		return h, nil
	case "forex":
		var h tradermade.History
		if err := json.Unmarshal(b, &h); err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown feed kind %q", kind)
	}
}

// dayRow is one output line of the reconciled table.
type dayRow struct {
	Date   string              `json:"date"`
	Prices []prices.StockPrice `json:"prices"`
}

func main() {
	var configPath string
	var datesCSV string
	var interpolate bool
	var timeout int

	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.StringVar(&datesCSV, "dates", "", "comma-separated dates of interest (YYYY-MM-DD), overrides config")
	flag.BoolVar(&interpolate, "interpolate", getenvBool("INTERPOLATE", true), "fill interior price gaps after merging")
	flag.IntVar(&timeout, "timeout", getenvInt("TIMEOUT_SEC", 30), "overall timeout seconds")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if datesCSV != "" {
		cfg.Dates = splitCSV(datesCSV)
	}
	cfg.Interpolate = interpolate
	if len(cfg.Feeds) == 0 {
		log.Fatal("no feeds configured; list payload dumps under feeds in config.json")
	}

	dates, err := cfg.DatesOfInterest()
	if err != nil {
		log.Fatalf("dates: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	// Decode payload dumps concurrently; the fold itself stays sequential.
	feeds := make([]reconcile.Feed, 0, len(cfg.Feeds))
	g, gctx := errgroup.WithContext(ctx)
	for _, fc := range cfg.Feeds {
		f := &fileFeed{symbol: fc.Symbol, kind: fc.Kind, path: fc.Path}
		feeds = append(feeds, f)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f.load()
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("load feeds: %v", err)
	}

	set, err := reconcile.Build(ctx, feeds, dates, cfg.Interpolate)
	if err != nil {
		log.Fatalf("reconcile: %v", err)
	}

	days := set.Dates()
	rows := make([]dayRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, dayRow{Date: d.Format("2006-01-02"), Prices: set.At(d)})
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(b))
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var x int
		_, _ = fmt.Sscanf(v, "%d", &x)
		if x != 0 {
			return x
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			return true
		case "0", "false", "no", "n":
			return false
		}
	}
	return def
}
