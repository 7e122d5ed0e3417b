package graph

import (
	"fmt"
	"path"

	"github.com/LegacyCodeHQ/solflat/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/solflat/cmd/source"
	"github.com/LegacyCodeHQ/solflat/depgraph"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	source       source.Options
	outputFormat string
	generateURL  bool
	maxDepth     int
}

// Cmd represents the graph command
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{
		outputFormat: formatters.OutputFormatDOT.String(),
	}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the import graph of a compiled file",
		Long: `Show the files a compiled file pulls in and the imports that connect them.

Only the first import that reaches a file is drawn; later imports of an
already reached file do not change the flatten order and are left out.
Files taking part in an import cycle are highlighted.

Examples:
  solflat graph -b build/bundle.json
  solflat graph -b build/bundle.json -f mermaid
  solflat graph -b build/bundle.json -f order
  solflat graph -b build/bundle.json -u`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts)
		},
	}

	opts.source.AddFlags(cmd)
	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().BoolVarP(&opts.generateURL, "url", "u", false, "Generate visualization URL (supported formats: dot)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Fail when an import chain is longer than this many files (0 = unbounded)")

	return cmd
}

func runGraph(cmd *cobra.Command, opts *graphOptions) error {
	formatter, err := NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	result, err := opts.source.Load()
	if err != nil {
		return err
	}

	g, err := depgraph.BuildDependencyGraph(result.Target, result.FileMap(), depgraph.WithMaxDepth(opts.maxDepth))
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	label := fmt.Sprintf("%s • %d", path.Base(result.Target), len(g.Files()))
	if len(g.Files()) == 1 {
		label += " file"
	} else {
		label += " files"
	}

	output, err := formatter.Format(g, formatters.RenderOptions{Label: label})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	if opts.generateURL {
		if generator, ok := formatter.(URLGenerator); ok {
			if urlStr, ok := generator.GenerateURL(output); ok {
				fmt.Fprintln(cmd.OutOrStdout(), urlStr)
				return nil
			}
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: URL generation is not supported for %s format\n\n", opts.outputFormat)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
