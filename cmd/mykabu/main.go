package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"mykabu/internal/application/service"
	"mykabu/internal/infrastructure/config"
	"mykabu/internal/infrastructure/logger"
	"mykabu/internal/infrastructure/storage/composite"
	"mykabu/internal/infrastructure/storage/postgres"
	"mykabu/internal/infrastructure/storage/sqlite"
	"mykabu/internal/interfaces/console"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config.toml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = config.Default()
		} else {
			logger.Setup("info")
			log.Fatal().Err(err).Str("config", *configPath).Msg("load config failed")
		}
	}
	logger.Setup(cfg.Log.Level)

	sink := console.NewSink()
	store, err := sqlite.Open(cfg.Store.Path, sink)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("open store failed")
	}
	defer store.Close()

	if dsn := cfg.Journal.MirrorDSN; dsn != "" {
		mirror, err := postgres.New(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("open journal mirror failed")
		}
		defer mirror.Close()
		// fan-out keeps room for further sinks beside the mirror
		store.SetJournalMirror(composite.New(mirror))
	}

	ctx := context.Background()
	if err := store.Setup(ctx, cfg.Store.DropTables); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	svc := service.NewLedgerService(store, sink)

	cmd := "holdings"
	args := flag.Args()
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	if err := run(ctx, svc, cmd, args); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *service.LedgerService, cmd string, args []string) error {
	switch cmd {
	case "holdings":
		holdings, err := svc.ListHoldings(ctx)
		if err != nil {
			return err
		}
		console.RenderHoldings(os.Stdout, holdings)
		return nil

	case "tickers":
		tickers, err := svc.ListTickers(ctx)
		if err != nil {
			return err
		}
		console.RenderTickers(os.Stdout, tickers)
		return nil

	case "buy":
		return runBuy(ctx, svc, args)

	case "add-ticker":
		return runAddTicker(ctx, svc, args)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runBuy(ctx context.Context, svc *service.LedgerService, args []string) error {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	ticker := fs.String("ticker", "", "ticker symbol (required)")
	timestamp := fs.String("date", "", `purchase time "YYYY-MM-DD HH:MM:SS" (required)`)
	shares := fs.String("shares", "", "number of shares (required)")
	price := fs.String("price", "", "price per share (required)")
	notes := fs.String("notes", "", "free-form notes")
	broker := fs.String("broker", "", "broker name")
	_ = fs.Parse(args)

	symbol := console.NormalizeSymbol(*ticker)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "error: -ticker is required")
		return errors.New("missing ticker")
	}
	purchase, err := console.ParsePurchase(*timestamp, *shares, *price, *notes, *broker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	if err := svc.RecordPurchase(ctx, symbol, purchase); err != nil {
		// already surfaced through the error sink
		return err
	}

	holdings, err := svc.ListHoldings(ctx)
	if err != nil {
		return err
	}
	console.RenderHoldings(os.Stdout, holdings)
	return nil
}

func runAddTicker(ctx context.Context, svc *service.LedgerService, args []string) error {
	fs := flag.NewFlagSet("add-ticker", flag.ExitOnError)
	ticker := fs.String("ticker", "", "ticker symbol (required)")
	name := fs.String("name", "", "display name (required)")
	_ = fs.Parse(args)

	symbol := console.NormalizeSymbol(*ticker)
	if symbol == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "error: -ticker and -name are required")
		return errors.New("missing ticker or name")
	}
	return svc.AddTicker(ctx, symbol, *name)
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: mykabu [-config config.toml] <command>

commands:
  holdings                     show all buy lots with computed lot values (default)
  tickers                      list known tickers
  buy -ticker SYM -date "YYYY-MM-DD HH:MM:SS" -shares N -price P [-notes S] [-broker S]
  add-ticker -ticker SYM -name NAME
`)
}
