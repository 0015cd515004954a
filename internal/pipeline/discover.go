package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivanmugu/fastasplit/internal/split"
)

// Discover lists the immediate subdirectories of root and emits a target
// for each one that contains targetName. Subdirectories lacking the file
// are returned in missing for the caller to report; they never fail the
// run. Non-directory entries are ignored and the scan does not recurse.
func Discover(root, targetName string) (targets []split.Target, missing []string, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("read root directory: %w", err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(root, e.Name(), targetName)
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, e.Name())
			continue
		}
		targets = append(targets, split.Target{Path: path, Folder: e.Name()})
	}
	return targets, missing, nil
}
