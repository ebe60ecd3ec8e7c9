package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/httpie/packages/core/config"
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/abdul-hamid-achik/httpie/packages/logger"
	"github.com/abdul-hamid-achik/httpie/packages/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGetCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request",
		Long: `Send a GET request to an absolute URL and print the response.

Examples:
  httpie get https://httpbin.org/get
  httpie get http://localhost:8080/health --no-color`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return parseAndSend(cmd, cfg, args)
		},
	}
}

func newPostCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "post <url> [key=value ...]",
		Short: "Send a POST request with a JSON body",
		Long: `Send a POST request whose body is a JSON object built from key=value
pairs. A repeated key keeps its last value.

Examples:
  httpie post https://httpbin.org/post foo=bar
  httpie post https://httpbin.org/post name=alice note=`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return parseAndSend(cmd, cfg, args)
		},
	}
}

// parseAndSend rebuilds the full argument list so the command name and
// its arguments go through the same parser as any other caller.
func parseAndSend(cmd *cobra.Command, cfg *config.Config, args []string) error {
	command, err := parser.Parse(append([]string{cmd.Name()}, args...))
	if err != nil {
		return err
	}
	return send(cmd, cfg, command)
}

// send dispatches command and renders whatever response comes back.
// Non-2xx statuses are printed like any other response.
func send(cmd *cobra.Command, cfg *config.Config, command parser.Command) error {
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}

	log := logger.New(cfg.LogLevel(), cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	highlighter := output.DefaultHighlighter()
	if cfg.Theme != output.DefaultTheme {
		h, err := output.NewHighlighter(cfg.Theme)
		if err != nil {
			return &usageError{err: err}
		}
		highlighter = h
	}

	client := http.NewClient(
		http.WithTimeout(cfg.Timeout),
		http.WithLogger(log),
	)

	resp, err := client.Dispatch(cmd.Context(), command)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsSuccess() {
		log.Debugw("non-success status", "status", resp.StatusCode)
	}

	renderer := output.NewConsoleRenderer(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithNoColor(cfg.NoColor || color.NoColor),
		output.WithPretty(cfg.Pretty),
		output.WithHighlighter(highlighter),
		output.WithLogger(log),
	)
	return renderer.Render(resp)
}
