// Package split implements the streaming FASTA record splitter. A single
// pass over the source file holds one line in memory at a time and keeps at
// most one output destination open: Idle until the first header line, then
// InRecord, closing the current output before opening the next on every
// subsequent header.
package split

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivanmugu/fastasplit/internal/header"
	"github.com/ivanmugu/fastasplit/internal/logging"
	"github.com/ivanmugu/fastasplit/internal/naming"
)

// recordMarker begins every header line.
const recordMarker = ">"

// maxLineBytes bounds a single input line. Assemblies commonly store a
// whole sequence on one line, so the limit is generous.
const maxLineBytes = 64 << 20

// Target is one resolved (source path, containing folder) pair scheduled
// for splitting.
type Target struct {
	Path   string // absolute path to the source file
	Folder string // base name of the directory containing Path
}

// NewTarget resolves path and derives the containing-folder name from its
// parent directory.
func NewTarget(path string) (Target, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Target{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	return Target{
		Path:   abs,
		Folder: filepath.Base(filepath.Dir(abs)),
	}, nil
}

// Result reports what one split produced.
type Result struct {
	Records      int      // headers encountered == outputs created
	BytesWritten int64    // total bytes written across all outputs
	Outputs      []string // output paths in record order
}

// Splitter holds the per-run settings for splitting files. Style must be
// validated before use (see config.Validate); Split does not re-validate
// it per line. A nil Log discards diagnostics.
type Splitter struct {
	Style     header.HeaderStyle
	OutputDir string
	DryRun    bool
	Log       *logging.Logger
}

// Split streams the target file and materializes one output file per
// header-delimited record. Existing files at computed paths are truncated.
// Body lines before the first header are dropped with a diagnostic; any
// I/O failure aborts immediately without removing partial output.
func (s *Splitter) Split(t Target) (Result, error) {
	log := s.Log
	if log == nil {
		log = logging.NewNop()
	}

	// Folder sanitization happens once per file; GenBank naming ignores it.
	folder := naming.SanitizeFolder(t.Folder)

	in, err := os.Open(t.Path)
	if err != nil {
		return Result{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		res      Result
		tracker  = naming.NewTracker()
		out      *bufio.Writer
		file     *os.File
		inRecord bool
		dropped  int
	)
	defer func() {
		if file != nil {
			_ = file.Close()
		}
	}()

	closeCurrent := func() error {
		if file == nil {
			return nil
		}
		if err := out.Flush(); err != nil {
			return err
		}
		err := file.Close()
		file, out = nil, nil
		return err
	}

	for sc.Scan() {
		line := sc.Text()

		if !strings.HasPrefix(line, recordMarker) {
			// Body line. Idle state: malformed input, drop and continue.
			if !inRecord {
				dropped++
				continue
			}
			if s.DryRun {
				continue
			}
			n, err := out.WriteString(line)
			if err != nil {
				return res, fmt.Errorf("write output: %w", err)
			}
			if err := out.WriteByte('\n'); err != nil {
				return res, fmt.Errorf("write output: %w", err)
			}
			res.BytesWritten += int64(n) + 1
			continue
		}

		// Header line: close-before-open keeps at most one destination open.
		if err := closeCurrent(); err != nil {
			return res, fmt.Errorf("close output: %w", err)
		}

		info, err := header.Parse(line, s.Style)
		if err != nil {
			return res, err
		}
		base, headerLine := naming.BuildName(s.Style, folder, info)
		path := naming.OutputPath(s.OutputDir, base)

		res.Records++
		if first, dup := tracker.Claim(path, res.Records); dup {
			log.Warn("Name collision: record %d overwrites record %d (%s)",
				res.Records, first, filepath.Base(path))
		}
		res.Outputs = append(res.Outputs, path)
		inRecord = true

		if s.DryRun {
			log.Info("  [dry] %s", filepath.Base(path))
			continue
		}

		file, err = os.Create(path)
		if err != nil {
			return res, fmt.Errorf("create output: %w", err)
		}
		out = bufio.NewWriter(file)
		n, err := out.WriteString(headerLine)
		if err != nil {
			return res, fmt.Errorf("write header: %w", err)
		}
		res.BytesWritten += int64(n)
	}

	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read %s: %w", t.Path, err)
	}
	if err := closeCurrent(); err != nil {
		return res, fmt.Errorf("close output: %w", err)
	}

	if dropped > 0 {
		log.Debug("Dropped %d body line(s) found before the first header in %s",
			dropped, filepath.Base(t.Path))
	}
	return res, nil
}
