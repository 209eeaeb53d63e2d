package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/pydown/internal/config"
	"github.com/agentflare-ai/pydown/internal/derrors"
)

const rootLongDesc = `
pydown turns structured docstrings into a Markdown reference document.

INPUT is a Python source file (.py), a symbol manifest (.yaml, .yml, .json)
or a Go package directory. OUTPUT is the document to write, or - for stdout.
OUTPUT is removed before anything else happens, so a failed run never leaves
a stale document behind.

Docstrings follow a small dialect: a summary line and a blank line, free
description text, and Parameters, Attributes and Values sections. Every
member of an enumeration must be documented in its Values section.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr, log: newLogger(stderr, config.Default().LogLevel())}
	cmd := &cobra.Command{
		Use:   "pydown [flags] INPUT OUTPUT",
		Short: "Generate a Markdown reference from docstrings",
		Long:  strings.TrimSpace(rootLongDesc),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: expected INPUT and OUTPUT arguments, got %d", derrors.Usage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", derrors.Usage, err)
	})

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&app.opts.configPath, "config", "c", "", "read settings from a TOML config file")
	pflags.StringVar(&app.opts.provider, "provider", config.ProviderAuto, "symbol provider: auto, go, manifest or python")
	pflags.StringVar(&app.opts.python, "python", "python3", "Python interpreter used to introspect .py input")
	pflags.StringVar(&app.opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	flags := cmd.Flags()
	flags.StringVar(&app.opts.format, "format", config.FormatMarkdown, "output format: markdown or html")
	flags.IntVar(&app.opts.workers, "workers", 0, "symbols rendered concurrently (0 means one per CPU)")
	flags.BoolVar(&app.opts.watch, "watch", false, "regenerate OUTPUT whenever INPUT changes")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, cmd.Flags(), args[0], args[1])
	}

	cmd.AddCommand(newSymbolsCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newSymbolsCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols INPUT",
		Short: "Print the symbols discovered in INPUT as a YAML manifest",
		Long: strings.TrimSpace(`
Print the public symbols found in INPUT, in the manifest format accepted as
input. Useful for checking what the providers see, or for capturing a
Python module's symbols into a file that can be documented without Python.

Example:

  pydown symbols astronomy.py > astronomy.yaml
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected INPUT argument, got %d", derrors.Usage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.listSymbols(cmd.Context(), cmd.Flags(), args[0])
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for pydown.

The output should be evaluated by your shell. For example:

  # bash
  pydown completion bash > /usr/local/etc/bash_completion.d/pydown

  # zsh
  pydown completion zsh > "${fpath[1]}/_pydown"

  # fish
  pydown completion fish | source

  # PowerShell
  pydown completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  pydown gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
