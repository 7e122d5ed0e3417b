package watch

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/LegacyCodeHQ/solflat/cmd/source"
	"github.com/LegacyCodeHQ/solflat/flatten"
	"github.com/LegacyCodeHQ/solflat/workspace"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	source    source.Options
	port      int
	maxDepth  int
	cacheSize int
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		port:      4900,
		cacheSize: workspace.DefaultCacheSize,
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-flatten whenever the compiler output changes and serve the result",
		Long: `Watch the compilation files for changes, flatten the target after every
compiler run, and serve the latest flattened file at localhost.

Routes:
  /           live view of the flattened file
  /flattened  the flattened file as plain text
  /status     the current target, e.g. "Flatten Token.sol"
  /events     server-sent events with every new result
  /ws         the same results over a WebSocket

Examples:
  solflat watch -b build/bundle.json
  solflat watch -i build/input.json --output-json build/output.json -t contracts/Token.sol -P 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	opts.source.AddFlags(cmd)
	cmd.Flags().IntVarP(&opts.port, "port", "P", opts.port, "HTTP server port")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Fail when an import chain is longer than this many files (0 = unbounded)")
	cmd.Flags().IntVar(&opts.cacheSize, "cache-size", opts.cacheSize, "Number of flattened results to keep")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	if err := opts.source.Validate(); err != nil {
		return err
	}

	session, err := workspace.NewSession(opts.cacheSize,
		flatten.WithMaxDepth(opts.maxDepth),
		flatten.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	b := newBroker()
	srv := newServer(session, b, opts.port)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", opts.port, err)
	}

	go srv.Serve(ln)

	rebuild := newRebuilder(opts.source, session, b)
	rebuild.deliverCurrentResult()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %v\n", opts.source.Files())
	fmt.Fprintf(cmd.OutOrStdout(), "Serving at http://localhost:%d\n", opts.port)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	err = watchAndRebuild(ctx, opts.source.Files(), func() {
		rebuild := newRebuilder(opts.source, session, b)
	rebuild.deliverCurrentResult()
	})

	srv.Close()
	return err
}
