package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wexbot/gowex/pkg/config"
	"github.com/wexbot/gowex/pkg/logger"
	"github.com/wexbot/gowex/pkg/wex"
)

func main() {
	var (
		cfgPath = flag.String("config", "config.yaml", "path to the YAML config file")
		pair    = flag.String("pair", "", "restrict trade history to one pair")
		history = flag.Int("history", 0, "print the last N trades from history")
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
	if err := cfg.RequireCredentials(); err != nil {
		logrus.Fatal(err)
	}

	client, err := wex.New(cfg.ClientConfig())
	if err != nil {
		logrus.Fatalf("create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	info, err := client.GetInfo(ctx)
	if err != nil {
		logrus.Fatalf("fetch account info: %v", err)
	}

	fmt.Printf("server time: %s\n", time.Unix(info.ServerTime, 0).Format(time.RFC3339))
	fmt.Printf("open orders: %d\n", info.OpenOrders)
	fmt.Println("funds:")
	for _, currency := range sortedCurrencies(info.Funds) {
		if balance := info.Funds[currency]; !balance.IsZero() {
			fmt.Printf("  %-6s %s\n", currency, balance)
		}
	}

	if *history > 0 {
		printHistory(ctx, client, *pair, *history)
	}
}

func printHistory(ctx context.Context, client *wex.Client, pair string, count int) {
	filters := map[string]string{"count": fmt.Sprint(count)}
	if pair != "" {
		filters["pair"] = pair
	}

	trades, err := client.TradeHistory(ctx, filters)
	if err != nil {
		logrus.Fatalf("fetch trade history: %v", err)
	}

	fmt.Printf("last %d trades:\n", len(trades))
	for id, entry := range trades {
		fmt.Printf("  #%s %s %s %s @ %s (%s)\n",
			id, entry.Pair, entry.Type, entry.Amount, entry.Rate,
			time.Unix(entry.Timestamp, 0).Format(time.RFC3339))
	}
}

func sortedCurrencies(funds wex.Funds) []string {
	currencies := make([]string, 0, len(funds))
	for currency := range funds {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)
	return currencies
}
