package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mnaoum/minireport"
)

func newInspectCmd(c *cli) *cobra.Command {
	var raw, toc bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a Markdown outline of a generated report",
		Long: `Reads a .docx (or .md) report and prints its headings, paragraphs
and tables as Markdown, rendered for the terminal unless --raw is set.
With --toc only the headings of a .docx are listed, indented by level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toc {
				return printContents(cmd, args[0])
			}

			md, err := minireport.Outline(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.logger.Debug("outline built", zap.String("path", args[0]), zap.Int("bytes", len(md)))

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			out, err := renderer.Render(md)
			if err != nil {
				return fmt.Errorf("failed to render outline: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print plain Markdown")
	cmd.Flags().BoolVar(&toc, "toc", false, "list headings only")
	return cmd
}

func printContents(cmd *cobra.Command, path string) error {
	entries, err := minireport.Contents(cmd.Context(), path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		indent := max(e.Level-1, 0) * 2
		if _, err := fmt.Fprintf(out, "%*s%s\n", indent, "", e.Text); err != nil {
			return err
		}
	}
	return nil
}
