package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/LegacyCodeHQ/solflat/cmd/flatten"
	"github.com/LegacyCodeHQ/solflat/cmd/graph"
	"github.com/LegacyCodeHQ/solflat/cmd/watch"
	"github.com/LegacyCodeHQ/solflat/cmd/why"
	"github.com/LegacyCodeHQ/solflat/internal/config"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCommand()

// NewRootCommand returns the solflat command tree.
func NewRootCommand() *cobra.Command {
	var envFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solflat",
		Short: "Flatten a compiled Solidity project into a single file",
		Long: `Solflat resolves the imports of a compiled Solidity file and writes
one self-contained file holding the target and everything it depends on,
dependencies first, with import statements removed.

Use 'solflat --help' to see all available commands, or 'solflat <command> --help'
for detailed information about a specific command.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = slog.LevelDebug
			}
			slog.SetDefault(newLogger(cmd, cfg.LogLevel))
			return applyConfigDefaults(cmd, cfg)
		},
	}

	cmd.AddCommand(flatten.NewCommand())
	cmd.AddCommand(graph.NewCommand())
	cmd.AddCommand(why.NewCommand())
	cmd.AddCommand(watch.NewCommand())

	if cmd.Annotations == nil {
		cmd.Annotations = make(map[string]string)
	}
	cmd.Annotations["buildDate"] = buildDate
	cmd.Annotations["commit"] = commit

	// Customize version template to show additional build info
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read settings from this file (default: .env when present)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// applyConfigDefaults fills flags the user did not set from the loaded configuration.
func applyConfigDefaults(cmd *cobra.Command, cfg config.Config) error {
	defaults := map[string]int{
		"max-depth":  cfg.MaxDepth,
		"port":       cfg.Port,
		"cache-size": cfg.CacheSize,
	}
	for name, value := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flag.Value.Set(fmt.Sprint(value)); err != nil {
			return fmt.Errorf("failed to apply default for --%s: %w", name, err)
		}
	}
	return nil
}
