package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CoinRadar/internal/collector"
	"CoinRadar/internal/config"
	"CoinRadar/internal/notifier"
	"CoinRadar/internal/recorder"
	"CoinRadar/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	csvPath := flag.String("csv", "", "path to CSV file to store price history")
	dbPath := flag.String("db", "", "path to SQLite DB to store price history")
	days := flag.Int("days", 0, "number of days of historical data to fetch (default 365)")
	coin := flag.String("coin", "", "coin id to fetch (default blockasset)")
	cfgPath := flag.String("config", "", "path to YAML config file")
	cronSpec := flag.String("cron", "", "optional cron spec to refresh on a schedule")
	flag.Parse()

	path := "configs/config.yaml"
	if *cfgPath != "" {
		path = *cfgPath
	} else if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Flags override config
	if *csvPath != "" {
		cfg.Output.CSVPath = *csvPath
	}
	if *dbPath != "" {
		cfg.Output.SQLitePath = *dbPath
	}
	if *days != 0 {
		cfg.DataSource.Days = *days
	}
	if *coin != "" {
		cfg.DataSource.CoinID = *coin
	}
	if *cronSpec != "" {
		cfg.Schedule.Cron = *cronSpec
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := collector.NewCoinGeckoFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)

	if cfg.Schedule.Cron == "" {
		if err := run(cfg, col); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		return
	}

	sched := scheduler.NewScheduler()
	if err := sched.Register(cfg.Schedule.Cron, func() {
		if err := run(cfg, col); err != nil {
			log.Printf("[ERROR] refresh: %v", err)
		}
	}); err != nil {
		log.Fatalf("[FATAL] register refresh: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] watch mode active. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

func run(cfg *config.Config, col *collector.Collector) error {
	fmt.Println("Fetching coin details...")
	detail, err := col.Fetcher.FetchCoinDetail(cfg.DataSource.CoinID)
	if err != nil {
		return fmt.Errorf("fetch coin details: %w", err)
	}
	fmt.Println(notifier.FormatDetailLine(detail))

	fmt.Println("Fetching historical prices...")
	series, err := col.CollectHistory(cfg.DataSource.CoinID, cfg.DataSource.Days)
	if err != nil {
		return fmt.Errorf("fetch price history: %w", err)
	}
	fmt.Println(notifier.FormatHistorySummary(series))

	recs, err := recorder.OpenAll(cfg.Output.CSVPath, cfg.Output.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sinks: %w", err)
	}
	defer recorder.CloseAll(recs)
	for _, rec := range recs {
		if err := rec.ReplacePrices(series.Points); err != nil {
			return fmt.Errorf("save prices: %w", err)
		}
	}
	if cfg.Output.CSVPath != "" {
		fmt.Printf("Saved CSV to %s\n", cfg.Output.CSVPath)
	}
	if cfg.Output.SQLitePath != "" {
		fmt.Printf("Saved DB to %s\n", cfg.Output.SQLitePath)
	}
	return nil
}
