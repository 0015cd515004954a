package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivanmugu/fastasplit/internal/split"
)

var countCmd = &cobra.Command{
	Use:   "count <file>...",
	Short: "Count the records in FASTA files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCount,
}

func runCount(_ *cobra.Command, args []string) error {
	total := 0
	for _, path := range args {
		n, err := split.CountRecords(path)
		if err != nil {
			return err
		}
		total += n
		fmt.Printf("%8d %s\n", n, path)
	}
	if len(args) > 1 {
		fmt.Printf("%8d total\n", total)
	}
	return nil
}
