// Command reportgen writes the Mini-Project 5.3 report.
//
// With no arguments it saves the report as a .docx in the working
// directory and prints one confirmation line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mnaoum/minireport"
	"github.com/mnaoum/minireport/format"
	"github.com/mnaoum/minireport/internal/config"
	"github.com/mnaoum/minireport/internal/logging"
)

// cli holds flag values and state shared by the commands.
type cli struct {
	// Global flags
	configPath string
	output     string
	formatName string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "reportgen",
		Short: "Generate the Mini-Project 5.3 anomaly detection report",
		Long: `reportgen writes the ship engine anomaly detection report.

Run without arguments to save it as
` + config.DefaultOutput + `
in the current directory. The output extension selects the format:
.docx (Word), .html (print-ready HTML) or .md (Markdown).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runGenerate,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug events to stderr")
	rootCmd.Flags().StringVarP(&c.output, "output", "o", "", "output path (default "+config.DefaultOutput+")")
	rootCmd.Flags().StringVarP(&c.formatName, "format", "f", "", "output format: docx, html or md (default from extension)")

	rootCmd.AddCommand(newInspectCmd(c))
	return rootCmd
}

// init loads configuration and builds the logger.
func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.output != "" {
		cfg.Output = c.output
	}
	if c.formatName != "" {
		cfg.Format = c.formatName
	}
	if c.verbose {
		cfg.Log.Level = "debug"
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	c.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	gen := minireport.New().
		Logger(c.logger).
		Output(c.cfg.Output)

	if c.cfg.Format != "" {
		f, err := format.Parse(c.cfg.Format)
		if err != nil {
			return err
		}
		gen = gen.Format(f)
	}

	path, err := gen.Generate(cmd.Context())
	if err != nil {
		return err
	}

	confirm(cmd.OutOrStdout(), path)
	return nil
}

// confirm prints the single success line. Color is only applied when out
// is a terminal.
func confirm(out io.Writer, path string) {
	style := lipgloss.NewRenderer(out).NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true)
	fmt.Fprintln(out, style.Render("✅ Created: "+path))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
