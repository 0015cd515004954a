// Command fastasplit splits multi-record FASTA files into one file per
// record. Output names derive from header metadata (Unicycler or GenBank
// style) and, for Unicycler assemblies, from the name of the folder
// containing the source file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivanmugu/fastasplit/internal/config"
	"github.com/ivanmugu/fastasplit/internal/header"
	"github.com/ivanmugu/fastasplit/internal/logging"
)

// version and commit are injected at build time via -ldflags. When built
// with plain "go build" they retain these defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

var (
	cfg = config.DefaultConfig()
	log *logging.Logger

	// Raw flag values converted into cfg during setup.
	flagStyle  string
	flagColor  string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "fastasplit",
	Short: "Split multi-record FASTA files into one file per record",
	Long: `fastasplit streams a FASTA file and writes one output file per record.

Output names come from the record's header metadata. With the default
unicycler style the name combines the containing folder with the length
and topology tokens of the header; with the genbank style the name is the
accession and the header is copied verbatim.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if log != nil {
			log.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagStyle, "style", string(header.StyleUnicycler), "Header style: unicycler | genbank")
	pf.StringVarP(&cfg.OutputDir, "out", "o", "", "Output directory (default: alongside each source file)")
	pf.BoolVar(&cfg.DryRun, "dry-run", false, "Report computed output names without writing files")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	pf.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	pf.StringVar(&flagColor, "color", string(config.ColorAuto), "Color output: auto | always | never")
	pf.StringVar(&flagConfig, "config", "", "YAML config file (flags take precedence)")

	rootCmd.Version = version + " (" + commit + ")"
	rootCmd.AddCommand(splitCmd, batchCmd, countCmd)
}

// setup resolves the final Config: defaults, then config file keys, then
// CLI flags. The header style is validated exactly once here; the splitter
// never re-checks it per line. The logger exists only after setup
// succeeds, so setup errors surface through cobra to stderr.
func setup(cmd *cobra.Command, _ []string) error {
	if flagConfig != "" {
		fc, err := config.LoadFile(flagConfig)
		if err != nil {
			return err
		}
		applyFileConfig(cmd, fc)
	}

	style, err := header.ParseStyle(flagStyle)
	if err != nil {
		return err
	}
	cfg.Style = style
	cfg.ColorMode = config.ColorMode(strings.ToLower(strings.TrimSpace(flagColor)))
	if cfg.OutputDir != "" {
		cfg.OutputDir = config.NormalizeDirArg(cfg.OutputDir)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err = logging.NewLogger(&cfg)
	return err
}

// applyFileConfig copies config file keys into the pending flag values,
// skipping any key whose flag was set explicitly on the command line.
func applyFileConfig(cmd *cobra.Command, fc *config.FileConfig) {
	flags := cmd.Flags()
	if fc.Style != nil && !flags.Changed("style") {
		flagStyle = *fc.Style
	}
	if fc.Output != nil && !flags.Changed("out") {
		cfg.OutputDir = *fc.Output
	}
	if fc.Color != nil && !flags.Changed("color") {
		flagColor = *fc.Color
	}
	if fc.Log != nil && !flags.Changed("log") {
		cfg.LogFile = *fc.Log
	}
	if fc.Verbose != nil && !flags.Changed("verbose") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.KeepGoing != nil && !flags.Changed("keep-going") {
		cfg.KeepGoing = *fc.KeepGoing
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fastasplit: %v\n", err)
		return 1
	}
	return 0
}
