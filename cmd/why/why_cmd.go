package why

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/solflat/cmd/source"
	"github.com/LegacyCodeHQ/solflat/depgraph"
	"github.com/spf13/cobra"
)

type whyOptions struct {
	source source.Options
}

// Cmd represents the why command.
var Cmd = NewCommand()

// NewCommand returns a new why command instance.
func NewCommand() *cobra.Command {
	opts := &whyOptions{}

	cmd := &cobra.Command{
		Use:   "why <file>",
		Short: "Show why a file ends up in the flattened output.",
		Long: `Show the import chain through which the target pulls in a file,
followed by every file that imports it.

Examples:
  solflat why -b build/bundle.json @openzeppelin/contracts/utils/Context.sol`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhy(cmd, opts, args[0])
		},
	}

	opts.source.AddFlags(cmd)

	return cmd
}

func runWhy(cmd *cobra.Command, opts *whyOptions, file string) error {
	result, err := opts.source.Load()
	if err != nil {
		return err
	}

	g, err := depgraph.BuildDependencyGraph(result.Target, result.FileMap())
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	chain := depgraph.ImportChain(g, file)
	if chain == nil {
		return fmt.Errorf("%s is not imported by %s", file, result.Target)
	}

	importers, err := depgraph.Importers(g, file)
	if err != nil {
		return fmt.Errorf("failed to find importers of %s: %w", file, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, chain[0])
	for _, f := range chain[1:] {
		fmt.Fprintf(out, "  -> %s\n", f)
	}
	if len(importers) > 0 {
		fmt.Fprintf(out, "\nImported by: %s\n", strings.Join(importers, ", "))
	}
	return nil
}
