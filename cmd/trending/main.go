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
	"CoinRadar/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	csvPath := flag.String("csv", "", "path to CSV file to store the results")
	dbPath := flag.String("db", "", "path to SQLite database to store the results")
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
	if *cronSpec != "" {
		cfg.Schedule.Cron = *cronSpec
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := collector.NewCoinGeckoFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	engine := strategy.NewEngine(fetcher, cfg.Trending.WindowDays, cfg.Trending.Period, cfg.Trending.TopN)

	if cfg.Schedule.Cron == "" {
		if err := run(cfg, engine); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		return
	}

	sched := scheduler.NewScheduler()
	if err := sched.Register(cfg.Schedule.Cron, func() {
		if err := run(cfg, engine); err != nil {
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

func run(cfg *config.Config, engine *strategy.Engine) error {
	results, err := engine.Run()
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(notifier.FormatCoinLine(r))
	}

	recs, err := recorder.OpenAll(cfg.Output.CSVPath, cfg.Output.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sinks: %w", err)
	}
	defer recorder.CloseAll(recs)
	for _, rec := range recs {
		if err := rec.ReplaceTrending(results); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}
	if cfg.Output.CSVPath != "" {
		fmt.Printf("Saved results to %s\n", cfg.Output.CSVPath)
	}
	if cfg.Output.SQLitePath != "" {
		fmt.Printf("Saved results to %s\n", cfg.Output.SQLitePath)
	}
	return nil
}
