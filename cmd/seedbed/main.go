package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gocloud.dev/blob/fileblob"

	"github.com/seedbed-io/seedbed/internal/catalog"
	"github.com/seedbed-io/seedbed/internal/config"
	"github.com/seedbed-io/seedbed/internal/fetcher"
	seedhttp "github.com/seedbed-io/seedbed/internal/http"
	"github.com/seedbed-io/seedbed/internal/populate"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitInvalidArgs     = 2
	ExitTargetNotAccess = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin *os.File) int {
	fs := flag.NewFlagSet("seedbed", flag.ContinueOnError)

	configPath := fs.String("config", "", "Path to YAML config file")
	workers := fs.Int("workers", 0, "Filesystem worker count (default: derived from CPU count)")
	netWorkers := fs.Int("net-workers", 0, "Download worker count (default: derived from CPU count)")
	noTimestamps := fs.Bool("no-timestamps", false, "Skip randomized file timestamps (faster)")
	noImages := fs.Bool("no-images", false, "Skip the image download phase")
	noProgress := fs.Bool("no-progress", false, "Disable progress bars")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: seedbed [options] <target-dir>

Populate a target directory with a categorized synthetic file corpus:
user documents, department shares, system logs, temp and cache files,
backup archives, downloaded images, and deleted-file artifacts.

The target directory must exist and be writable.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one target directory is required")
		fs.Usage()
		return ExitInvalidArgs
	}
	target := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitInvalidArgs
		}
		cfg = loaded
	}
	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitInvalidArgs
	}
	cfg = cfg.Merge(config.Config{Workers: *workers, NetWorkers: *netWorkers})
	if *noTimestamps {
		cfg.Timestamps = false
	}
	if *noProgress {
		cfg.Progress = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitInvalidArgs
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	info, err := os.Stat(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot access target %s: %v\n", target, err)
		return ExitTargetNotAccess
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: target %s is not a directory\n", target)
		return ExitTargetNotAccess
	}

	if !*yes && !confirm(stdin, target) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return ExitSuccess
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\n[seedbed] Received interrupt, finishing in-flight work...")
		cancel()
	}()

	var fetch *fetcher.Fetcher
	if !*noImages {
		bucket, err := fileblob.OpenBucket(target, &fileblob.Options{
			CreateDir: true,
			Metadata:  fileblob.MetadataDontWrite,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open target for downloads: %v\n", err)
			return ExitTargetNotAccess
		}
		defer bucket.Close()

		client := seedhttp.NewClient(seedhttp.Options{
			Timeout:         cfg.Timeout,
			RetryAttempts:   cfg.Retry.Attempts,
			RetryBackoff:    cfg.Retry.Backoff,
			RetryMaxBackoff: cfg.Retry.MaxBackoff,
		})
		fetch = fetcher.New(client, bucket, fetcher.Options{MaxConns: cfg.MaxConns})
	}

	p, err := populate.New(target, fetch, populate.Options{
		ImageURLs:  imageURLs(cfg),
		ImageUsers: cfg.ImageUsers,
		BatchSize:  cfg.BatchSize,
		Workers:    cfg.Workers,
		NetWorkers: cfg.NetWorkers,
		Timestamps: cfg.Timestamps,
		Progress:   cfg.Progress,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitTargetNotAccess
	}

	sum, err := p.Run(ctx)
	printSummary(sum)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[seedbed] Run interrupted; target is partially populated")
		return ExitGeneralError
	}
	return ExitSuccess
}

// imageURLs resolves the image endpoint list; nil selects the built-in
// image-service default.
func imageURLs(cfg config.Config) []string {
	if cfg.ImageCount <= 0 {
		return nil
	}
	return catalog.ImageURLs(cfg.ImageCount)
}

// confirm asks the operator before writing into the target.
func confirm(stdin *os.File, target string) bool {
	fmt.Fprintf(os.Stderr, "This will fill %s with a large synthetic file corpus. Continue? (y/N): ", target)
	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printSummary(sum populate.Summary) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "[seedbed] Population summary:")
	for _, ph := range sum.Phases {
		fmt.Fprintf(os.Stderr, "  %-12s %6d written, %d failed (%s)\n",
			ph.Name, ph.Written, ph.Failed, ph.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(os.Stderr, "[seedbed] Created %d of %d attempted files in %s\n",
		sum.Created, sum.Attempted, sum.Duration.Round(time.Second))
}
