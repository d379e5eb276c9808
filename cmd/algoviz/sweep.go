package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/bench"
)

func runSweep(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("sweep", stderr)
	path := fs.String("config", "", "YAML configuration file")
	format := fs.String("format", "table", "output format: table|csv|json|yaml|xlsx")
	metric := fs.String("metric", "", "metric for table/csv: runtime|comparisons|writes")
	progress := fs.Bool("progress", false, "draw a progress bar on stderr")
	algos := fs.String("algos", "", "comma separated sort keys")
	kind := fs.String("kind", "", "array kind: random|reversed|nearly|fewunique")
	minN := fs.Int("min", 0, "smallest input size")
	maxN := fs.Int("max", 0, "largest input size")
	points := fs.Int("points", 0, "number of sizes")
	trials := fs.Int("trials", 0, "trials per size")
	seed := fs.Int64("seed", 0, "base seed")
	if err := parse(fs, args); err != nil {
		return err
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	sc, m := cfg.Sweep.SweepConfig, cfg.Sweep.Metric
	set := setFlags(fs)
	if set["algos"] {
		sc.Algorithms = strings.Split(*algos, ",")
	}
	if set["kind"] {
		if sc.Kind, err = arraygen.ParseKind(*kind); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
	}
	if set["metric"] {
		if m, err = bench.ParseMetric(*metric); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
	}
	if set["min"] {
		sc.MinN = *minN
	}
	if set["max"] {
		sc.MaxN = *maxN
	}
	if set["points"] {
		sc.Points = *points
	}
	if set["trials"] {
		sc.Trials = *trials
	}
	if set["seed"] {
		sc.Seed = *seed
	}
	rnd, err := bench.NewRenderer(*format, m)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []bench.SweepOption
	var bar *pb.ProgressBar
	if *progress {
		opts = append(opts, bench.WithProgress(func(done, total int) {
			if bar == nil {
				bar = pb.New(total).SetWriter(stderr).Start()
			}
			bar.SetCurrent(int64(done))
		}))
	}
	start := time.Now()
	rep, err := bench.Sweep(ctx, sc, opts...)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if rep == nil || !rep.Partial {
			return err
		}
		fmt.Fprintf(stderr, "warning: %v; rendering %d of %d sizes\n", err, len(rep.Rows), len(rep.Sizes))
	}
	if err := rnd.Write(stdout, rep); err != nil {
		return err
	}
	if *progress {
		p := message.NewPrinter(language.English)
		p.Fprintf(stderr, "%d sizes × %d algorithms × %d trials in %v\n",
			len(rep.Rows), len(sc.Algorithms), sc.Trials, time.Since(start).Round(time.Millisecond))
	}

	return nil
}
