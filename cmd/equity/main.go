// Command equity runs a range-vs-range Monte Carlo equity simulation from
// the command line, e.g.:
//
//	equity --ranges=AA --ranges=KK --games=200000 --threads=8
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/rangeequity/internal/card"
	"github.com/lox/rangeequity/internal/config"
	"github.com/lox/rangeequity/internal/equity"
	"github.com/lox/rangeequity/internal/ranges"
)

type CLI struct {
	Ranges  []string `required:"" sep:"|" help:"Hand ranges, one per player, e.g. --ranges=AA --ranges=KK"`
	Board   string   `help:"Known community cards, e.g. JsTs2c"`
	Dead    string   `help:"Additional known cards; combined with --board, every one is dealt as a community card"`
	Threads int      `default:"0" help:"Worker thread count (0: use RANGEEQUITY_THREADS or GOMAXPROCS)"`
	Games   uint64   `default:"0" help:"Number of trials to simulate (0: use RANGEEQUITY_GAMES or 100000)"`
	Seed    int64    `default:"0" help:"Base RNG seed (0: use RANGEEQUITY_SEED or a fixed default)"`
	Verbose bool     `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	envCfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: logLevel(cli.Verbose, envCfg.LogLevel)})

	if cli.Threads == 0 {
		cli.Threads = envCfg.Threads
	}
	if cli.Threads == 0 {
		cli.Threads = runtime.GOMAXPROCS(0)
	}
	if cli.Games == 0 {
		cli.Games = envCfg.Games
	}
	if cli.Games == 0 {
		cli.Games = 100_000
	}
	if cli.Seed == 0 {
		cli.Seed = envCfg.Seed
	}

	parsedRanges := make([]ranges.HandRange, len(cli.Ranges))
	for i, s := range cli.Ranges {
		r, err := ranges.FromString(s)
		if err != nil {
			logger.Fatal("invalid range", "player", i, "range", s, "error", err)
		}
		parsedRanges[i] = r
	}

	deadMask, err := card.GetCardMask(cli.Board + cli.Dead)
	if err != nil {
		logger.Fatal("invalid board/dead cards", "error", err)
	}

	logger.Info("starting simulation",
		"players", len(parsedRanges),
		"games", cli.Games,
		"threads", cli.Threads,
		"board", cli.Board,
	)

	start := time.Now()
	var result equity.Result
	if cli.Seed != 0 {
		result, err = equity.CalcEquityWithSeed(parsedRanges, deadMask, uint32(cli.Threads), cli.Games, cli.Seed)
	} else {
		equities, calcErr := equity.CalcEquity(parsedRanges, deadMask, uint32(cli.Threads), cli.Games)
		result, err = equity.Result{Equities: equities}, calcErr
	}
	if err != nil {
		logger.Fatal("simulation failed", "error", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("ranges: %s\n", strings.Join(cli.Ranges, " vs "))
	for i, e := range result.Equities {
		fmt.Printf("  player %d: %.4f\n", i, e)
	}
	logger.Info("simulation complete",
		"elapsed", elapsed,
		"rejected_trials", result.RejectedTrials,
		"hands_per_sec", float64(cli.Games)/elapsed.Seconds(),
	)

	kctx.Exit(0)
}

func logLevel(verbose bool, envLevel string) log.Level {
	if verbose {
		return log.DebugLevel
	}
	switch strings.ToLower(envLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
