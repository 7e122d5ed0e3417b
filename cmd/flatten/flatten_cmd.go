package flatten

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/LegacyCodeHQ/solflat/cmd/source"
	"github.com/LegacyCodeHQ/solflat/flatten"
	"github.com/spf13/cobra"
)

type flattenOptions struct {
	source   source.Options
	outPath  string
	maxDepth int
}

// Cmd represents the flatten command.
var Cmd = NewCommand()

// NewCommand returns a new flatten command instance.
func NewCommand() *cobra.Command {
	opts := &flattenOptions{}

	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Flatten a compiled file and its imports into a single file",
		Long: `Flatten a compiled Solidity file and everything it imports into a single file.

Files are written dependencies first, each introduced by a "// File: <path>" header,
with import statements removed.

Examples:
  solflat flatten -b build/bundle.json
  solflat flatten -b build/bundle.json -t contracts/Vault.sol -o Vault.flat.sol
  solflat flatten -i build/input.json --output-json build/output.json -t contracts/Token.sol`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(cmd, opts)
		},
	}

	opts.source.AddFlags(cmd)
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the flattened file here instead of stdout")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Fail when an import chain is longer than this many files (0 = unbounded)")

	return cmd
}

func runFlatten(cmd *cobra.Command, opts *flattenOptions) error {
	result, err := opts.source.Load()
	if err != nil {
		return err
	}

	output, err := flatten.FlattenTarget(result,
		flatten.WithMaxDepth(opts.maxDepth),
		flatten.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to flatten %s: %w", result.Target, err)
	}

	if opts.outPath == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	if err := os.WriteFile(opts.outPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.outPath, err)
	}
	slog.Info("wrote flattened file", "target", result.Target, "path", opts.outPath)
	return nil
}
