package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/showtrack/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	dbPath := flag.String("db", "", "override database path (optional)")
	importPath := flag.String("import", "", "import series from an IMDb title.basics.tsv[.gz] before starting")
	tickMS := flag.Int("tick", 0, "UI tick in milliseconds (optional, defaults to 250)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		DBPath:     *dbPath,
		ImportPath: *importPath,
	}
	if tick := *tickMS; tick > 0 {
		opts.Tick = time.Duration(tick) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "showtrack: %v\n", err)
		return 1
	}
	return 0
}
