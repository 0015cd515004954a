package split

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// CountRecords counts header lines in a FASTA file without writing
// anything. Used by the count subcommand for a quick look at a file before
// splitting it.
func CountRecords(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		if strings.HasPrefix(sc.Text(), recordMarker) {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return n, nil
}
