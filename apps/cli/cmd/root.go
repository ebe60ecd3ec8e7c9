package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/httpie/packages/core/config"
	"github.com/abdul-hamid-achik/httpie/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "httpie",
		Short: "A tiny httpie-style HTTP client",
		Long: `httpie sends a single GET or POST request and prints the response
with a colored status line, headers and a syntax-highlighted body.

Examples:
  httpie get https://httpbin.org/get
  httpie post https://httpbin.org/post name=alice role=admin`,
		Version:       version,
		SilenceErrors: true,
		// Positional args reaching the root name an unknown command.
		Args:          wrapArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout (e.g., 30s, 1m); 0 keeps the client default")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Re-indent JSON response bodies")
	rootCmd.PersistentFlags().StringVar(&cfg.Theme, "theme", cfg.Theme, "Syntax highlighting theme")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log request diagnostics to stderr")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(newGetCmd(cfg))
	rootCmd.AddCommand(newPostCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and exits the process with the matching exit code
func Execute(v, bt string) {
	version = v
	buildTime = bt

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		output.NewConsoleRenderer(output.WithWriter(stderr)).FormatError(err)
	}
	return exitCode(err)
}

// exactArgs is cobra.ExactArgs with the error marked as a usage error
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func minimumArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MinimumNArgs(n))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
