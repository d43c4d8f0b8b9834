package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/mcdnew/mp4-splitter/config"
	"github.com/mcdnew/mp4-splitter/engine"
	"github.com/mcdnew/mp4-splitter/ffprobe"
	"github.com/mcdnew/mp4-splitter/internal/timeutil"
	"github.com/mcdnew/mp4-splitter/resolver"
	"github.com/mcdnew/mp4-splitter/splitter"
)

func main() {
	// Step 1: Load configuration (CLI flags > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	runner := engine.NewExecRunner()

	// Step 2: Pre-flight dependency check before any other work
	if err := engine.CheckDependencies(runner); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	// Step 3: Fill missing values interactively when a terminal is attached
	if needsResolution(cfg) && term.IsTerminal(int(os.Stdin.Fd())) {
		res := resolver.New(os.Stdin, os.Stdout)
		if err := res.Resolve(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	// Step 4: Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\n⚠️  Interrupt received, stopping...")
		cancel()
	}()

	// Step 5: Run the split
	if err := run(ctx, cfg, runner); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Println("\n⚠️  Split cancelled by user")
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "\n❌ %v\n", err)

		// Surface FFmpeg's own exit code to the shell
		var engErr *splitter.EngineError
		if errors.As(err, &engErr) && engErr.ExitCode > 0 {
			os.Exit(engErr.ExitCode)
		}
		os.Exit(1)
	}
}

// needsResolution reports whether interactive prompting is required to
// complete the configuration.
func needsResolution(cfg *config.Config) bool {
	if cfg.Input == "" || cfg.Chunks <= 0 {
		return true
	}
	if info, err := os.Stat(cfg.Input); err == nil && info.IsDir() {
		return true
	}
	return false
}

// run executes the complete split workflow
func run(ctx context.Context, cfg *config.Config, runner engine.Runner) error {
	startTime := time.Now()

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║          MP4 SPLITTER - LOSSLESS STREAM COPY                   ║")
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Printf("Input:  %s\n", cfg.Input)
	fmt.Printf("Chunks: %d\n", cfg.Chunks)
	fmt.Println()

	sp := splitter.New(runner, cfg.Input, cfg.Chunks, cfg.OutputDir)

	// PHASE 1: Media Analysis
	fmt.Println("📊 Phase 1: Media Analysis")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	plan, err := sp.Plan(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("  Duration:         %.2f seconds (%s)\n", plan.Duration, timeutil.FormatSeconds(plan.Duration))
	fmt.Printf("  Target chunks:    %d\n", plan.ChunkCount)
	fmt.Printf("  Approx per chunk: %.2f seconds (%s)\n", plan.SecondsPerChunk, timeutil.FormatSeconds(plan.SecondsPerChunk))
	fmt.Printf("  Output pattern:   %s\n", plan.OutputTemplate)

	if cfg.Verbose {
		if info, err := ffprobe.Inspect(ctx, runner, cfg.Input); err == nil {
			fmt.Printf("  Format:           %s\n", info.Format.FormatLongName)
			fmt.Printf("  Video streams:    %d\n", info.CountStreams("video"))
			fmt.Printf("  Audio streams:    %d\n", info.CountStreams("audio"))
			if n := info.CountStreams("subtitle"); n > 0 {
				fmt.Printf("  Subtitle streams: %d\n", n)
			}
		}
	}
	fmt.Println()

	// Dry-run stops after planning
	if cfg.DryRun {
		cfg.PrintConfig()
		fmt.Println()
		fmt.Println("✂️  Dry run - command that would be executed:")
		fmt.Printf("  %s\n", sp.DryRun(plan))
		return nil
	}

	// PHASE 2: Splitting
	fmt.Println("✂️  Phase 2: Splitting (stream copy, no re-encoding)")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if err := sp.Run(ctx, plan); err != nil {
		return err
	}

	elapsed := time.Since(startTime)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                     ✅ SUCCESS!")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Output dir:  %s\n", plan.OutputDir)
	fmt.Printf("  Chunks:      %d\n", plan.ChunkCount)
	fmt.Printf("  First file:  %s\n", plan.ChunkPath(1))
	fmt.Printf("  Last file:   %s\n", plan.ChunkPath(plan.ChunkCount))
	fmt.Printf("  Total time:  %.2fs\n", elapsed.Seconds())
	fmt.Println("═══════════════════════════════════════════════════════════")

	return nil
}
