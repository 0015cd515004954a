package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ivanmugu/fastasplit/internal/config"
	"github.com/ivanmugu/fastasplit/internal/display"
	"github.com/ivanmugu/fastasplit/internal/logging"
	"github.com/ivanmugu/fastasplit/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Split one FASTA file in each subdirectory of a root",
	Long: `Scan the immediate subdirectories of a root directory for a file of a
given name (one level deep, no recursion) and split each one found.
Subdirectories lacking the file are reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&cfg.RootDir, "root", "r", "", "Root directory to scan")
	batchCmd.Flags().StringVarP(&cfg.TargetName, "name", "n", "assembly.fasta", "Target filename inside each subdirectory")
	batchCmd.Flags().BoolVar(&cfg.KeepGoing, "keep-going", false, "Continue past a failed target and report a summary")
	_ = batchCmd.MarkFlagRequired("root")
}

func runBatch(_ *cobra.Command, _ []string) error {
	display.PrintBanner(logging.ColorEnabled(&cfg))
	cfg.RootDir = config.NormalizeDirArg(cfg.RootDir)

	// Cancel between files on SIGINT/SIGTERM so an interrupted batch does
	// not start new targets.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d target(s) failed", stats.Failed, stats.Targets)
	}
	return nil
}
