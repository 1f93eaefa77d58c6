package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wexbot/gowex/pkg/config"
	"github.com/wexbot/gowex/pkg/logger"
	"github.com/wexbot/gowex/pkg/wex"
)

func main() {
	var (
		cfgPath  = flag.String("config", "config.yaml", "path to the YAML config file")
		pair     = flag.String("pair", "btc_usd", "trading pair to watch")
		levels   = flag.Int("levels", 5, "order book levels to print per side")
		interval = flag.Duration("interval", 10*time.Second, "refresh interval")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		logrus.Fatalf("init logger: %v", err)
	}

	// Market data needs no credentials.
	client, err := wex.New(cfg.ClientConfig())
	if err != nil {
		logrus.Fatalf("create client: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	printBook(ctx, client, *pair, *levels)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			printBook(ctx, client, *pair, *levels)
		}
	}
}

func printBook(ctx context.Context, client *wex.Client, pair string, levels int) {
	tk, err := client.Ticker(ctx, pair)
	if err != nil {
		logrus.Errorf("fetch ticker for %s: %v", pair, err)
		return
	}
	depth, err := client.Depth(ctx, pair, levels)
	if err != nil {
		logrus.Errorf("fetch depth for %s: %v", pair, err)
		return
	}

	fmt.Printf("%s  last=%s buy=%s sell=%s high=%s low=%s\n",
		pair, tk.Last, tk.Buy, tk.Sell, tk.High, tk.Low)
	if spread, ok := depth.Spread(); ok {
		mid, _ := depth.Mid()
		fmt.Printf("  spread=%s mid=%s\n", spread, mid)
	}
	for i := len(depth.Asks) - 1; i >= 0; i-- {
		fmt.Printf("  ask %12s x %s\n", depth.Asks[i].Price, depth.Asks[i].Amount)
	}
	for _, bid := range depth.Bids {
		fmt.Printf("  bid %12s x %s\n", bid.Price, bid.Amount)
	}
	fmt.Println()
}
