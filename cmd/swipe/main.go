// Package main is the entry point for the swipe command, a pitch
// tracker: given one or more audio files, it estimates fundamental
// frequency over time and writes a time/pitch track for each.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/austinkregel/swipe/internal/batch"
	"github.com/austinkregel/swipe/internal/config"
	"github.com/austinkregel/swipe/internal/output"
	"github.com/austinkregel/swipe/internal/pitch"
	"github.com/austinkregel/swipe/internal/wavio"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Flags holds the parsed command-line configuration.
type Flags struct {
	Input     string
	Output    string
	BatchList string
	Range     string
	Threshold float64
	Hop       float64
	Mel       bool
	Suppress  bool
	Version   bool
}

func main() {
	flags := parseFlags()

	if flags.Version {
		fmt.Printf("swipe version %s\n", Version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("[SWIPE] received signal %v, shutting down", sig)
		cancel()
	}()

	if err := run(ctx, flags); err != nil {
		log.Fatalf("[SWIPE] fatal: %v", err)
	}
}

func parseFlags() *Flags {
	f := &Flags{}

	flag.StringVar(&f.Input, "i", "", "input audio file")
	flag.StringVar(&f.Output, "o", "", "output track file (default: stdout)")
	flag.StringVar(&f.BatchList, "b", "", "batch list file: one \"input output\" pair per line")
	flag.StringVar(&f.Range, "r", "100:600", "pitch search range: \"min:max\" in Hz, or a named preset (male, female, child, full)")
	flag.Float64Var(&f.Threshold, "s", 0.3, "pitch-strength threshold")
	flag.Float64Var(&f.Hop, "t", 0.001, "time step between estimates, in seconds")
	flag.BoolVar(&f.Mel, "m", false, "report pitch in Mel instead of Hz")
	flag.BoolVar(&f.Suppress, "n", false, "omit lines with no confident estimate")
	flag.BoolVar(&f.Version, "v", false, "print version and exit")
	flag.Parse()

	return f
}

// resolveRange parses f.Range as either a "min:max" pair or a named
// preset from mgr.
func resolveRange(mgr *config.Manager, spec string) (pmin, pmax float64, err error) {
	if before, after, ok := strings.Cut(spec, ":"); ok {
		pmin, err = strconv.ParseFloat(before, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range %q: %w", spec, err)
		}
		pmax, err = strconv.ParseFloat(after, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range %q: %w", spec, err)
		}
		return pmin, pmax, nil
	}

	r, ok := mgr.Get(spec)
	if !ok {
		return 0, 0, fmt.Errorf("unknown range %q: expected \"min:max\" or a named preset", spec)
	}
	return r.Min, r.Max, nil
}

func run(ctx context.Context, f *Flags) error {
	mgr := config.NewManager("")
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("[SWIPE] %w", err)
	}

	pmin, pmax, err := resolveRange(mgr, f.Range)
	if err != nil {
		return fmt.Errorf("[SWIPE] %w", err)
	}

	fmtOpts := output.Format{Mel: f.Mel, SuppressMissing: f.Suppress}

	if f.BatchList != "" {
		return runBatch(ctx, f, pmin, pmax, fmtOpts)
	}

	if f.Input == "" {
		return fmt.Errorf("[SWIPE] -i is required (or use -b for batch mode)")
	}

	return trackOne(ctx, f.Input, f.Output, pmin, pmax, f.Threshold, f.Hop, fmtOpts)
}

func trackOne(ctx context.Context, input, outputPath string, pmin, pmax, threshold, hop float64, fmtOpts output.Format) error {
	sig, err := wavio.Open(ctx, input)
	if err != nil {
		return fmt.Errorf("[SWIPE] %w", err)
	}

	result, err := pitch.Track(ctx, sig, pmin, pmax, threshold, hop)
	if err != nil {
		return fmt.Errorf("[SWIPE] %w", err)
	}

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("[SWIPE] create output %q: %w", outputPath, err)
		}
		defer f.Close()
		return output.WriteTrack(f, result.Time, result.Pitch, fmtOpts)
	}

	return output.WriteTrack(os.Stdout, result.Time, result.Pitch, fmtOpts)
}

func runBatch(ctx context.Context, f *Flags, pmin, pmax float64, fmtOpts output.Format) error {
	jobs, err := batch.LoadList(f.BatchList)
	if err != nil {
		return fmt.Errorf("[BATCH] %w", err)
	}

	result := batch.Run(ctx, jobs, func(ctx context.Context, job batch.Job) error {
		return trackOne(ctx, job.Input, job.Output, pmin, pmax, f.Threshold, f.Hop, fmtOpts)
	})

	log.Printf("[BATCH] %d/%d succeeded", result.Succeeded, result.Total)
	for _, failure := range result.Failures {
		log.Printf("[BATCH] %s: %v", failure.Job.Input, failure.Err)
	}

	if len(result.Failures) > 0 {
		return fmt.Errorf("[BATCH] %d of %d jobs failed", len(result.Failures), result.Total)
	}
	return nil
}
