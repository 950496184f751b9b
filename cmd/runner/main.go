package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dailysale/internal/config"
)

type command struct {
	usage string
	run   func(ctx context.Context, app *app, args []string) error
}

var commands = map[string]command{
	"run":           {"run --percent 20 --start 2025-11-26 --days 10 [--section \"Winter Sale\"]", runBatch},
	"list":          {"list [--all]", listSales},
	"remove":        {"remove <sale-id>", removeSale},
	"retry":         {"retry <sale-id>", retrySale},
	"continue":      {"continue <sale-id> [--days N] [--run]", continueFrom},
	"set-key":       {"set-key <license-key>", setKey},
	"status":        {"status", status},
	"wizard-config": {"wizard-config", writeWizardConfig},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "comando desconhecido: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	err = cmd.run(ctx, app, os.Args[2:])
	app.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

func printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "uso: dailysale <comando> [opções]")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
}
