package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivanmugu/fastasplit/internal/config"
	"github.com/ivanmugu/fastasplit/internal/display"
	"github.com/ivanmugu/fastasplit/internal/logging"
	"github.com/ivanmugu/fastasplit/internal/split"
)

// Run is the top-level batch entry point. It discovers targets under
// cfg.RootDir, splits each one sequentially, and returns aggregate stats.
//
// Failure policy: by default the first fatal per-file error aborts the
// batch and is returned (remaining targets are not attempted). With
// cfg.KeepGoing the error is logged, counted in stats.Failed, and the run
// continues to the summary. An unreadable root is always a fatal
// configuration error, reported before any file is processed.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	targets, missing, err := Discover(cfg.RootDir, cfg.TargetName)
	if err != nil {
		return stats, err
	}

	for _, name := range missing {
		log.Warn("Skip %s: no %s", name, cfg.TargetName)
		stats.Skipped++
	}

	stats.Targets = len(targets)
	log.Info("Found %s under %s", display.FormatCount(len(targets), "target"), cfg.RootDir)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}

	for i, t := range targets {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		if err := processTarget(cfg, log, t, &stats); err != nil {
			stats.Failed++
			if !cfg.KeepGoing {
				return stats, fmt.Errorf("split %s: %w", t.Path, err)
			}
			log.Error("Split %s: %v", t.Path, err)
		}
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processTarget splits one discovered file: resolve the output directory,
// run the splitter, and fold the result into stats.
func processTarget(cfg *config.Config, log *logging.Logger, t split.Target, stats *RunStats) error {
	log.Info("[%d/%d] %s", stats.Current, stats.Targets, filepath.Join(t.Folder, cfg.TargetName))

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(t.Path)
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	sp := &split.Splitter{
		Style:     cfg.Style,
		OutputDir: outDir,
		DryRun:    cfg.DryRun,
		Log:       log,
	}
	res, err := sp.Split(t)
	if err != nil {
		return err
	}

	if res.Records == 0 {
		log.Warn("  No records found")
	} else {
		log.Success("  %s -> %s", display.FormatCount(res.Records, "record"), outDir)
	}

	stats.SplitFiles++
	stats.Records += res.Records
	stats.BytesWritten += res.BytesWritten
	return nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d file(s) split, %d record(s) written, %d skipped, %d failed",
		stats.SplitFiles, stats.Records, stats.Skipped, stats.Failed)
	if cfg.DryRun {
		log.Info("Total output: n/a (dry run)")
		return
	}
	log.Info("Total output: %s", display.FormatBytes(stats.BytesWritten))
}
