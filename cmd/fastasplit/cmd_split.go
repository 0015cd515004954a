package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ivanmugu/fastasplit/internal/display"
	"github.com/ivanmugu/fastasplit/internal/split"
)

var flagInput string

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a single FASTA file",
	Long: `Split one FASTA file into one output file per record. Outputs are
written next to the input file unless --out is given.`,
	Args: cobra.NoArgs,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Input FASTA file")
	_ = splitCmd.MarkFlagRequired("input")
}

func runSplit(_ *cobra.Command, _ []string) error {
	target, err := split.NewTarget(flagInput)
	if err != nil {
		return err
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(target.Path)
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}

	sp := &split.Splitter{
		Style:     cfg.Style,
		OutputDir: outDir,
		DryRun:    cfg.DryRun,
		Log:       log,
	}
	res, err := sp.Split(target)
	if err != nil {
		return err
	}

	if res.Records == 0 {
		log.Warn("No records found in %s", target.Path)
		return nil
	}
	log.Success("Done: %s written to %s (%s)",
		display.FormatCount(res.Records, "record"), outDir, display.FormatBytes(res.BytesWritten))
	return nil
}
