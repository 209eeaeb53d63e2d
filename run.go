package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/agentflare-ai/pydown/internal/config"
	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/reference"
	"github.com/agentflare-ai/pydown/internal/symbol"
	"github.com/agentflare-ai/pydown/internal/symbol/gosource"
	"github.com/agentflare-ai/pydown/internal/symbol/manifest"
	"github.com/agentflare-ai/pydown/internal/symbol/pyintrospect"
)

type options struct {
	configPath string
	provider   string
	format     string
	workers    int
	python     string
	logLevel   string
	watch      bool
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
	log    *logrus.Logger
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	err := cmd.ExecuteContext(ctx)
	if errors.Is(err, derrors.Usage) {
		fmt.Fprintf(stderr, "usage: %s\n", cmd.UseLine())
	}
	return err
}

func (app *cliApp) execute(ctx context.Context, flags *pflag.FlagSet, input, output string) error {
	cfg, err := app.configure(flags)
	if errors.Is(err, derrors.Usage) {
		return err
	}
	// A failed run must not leave a previous document behind.
	if rerr := removeOutput(output); rerr != nil {
		return rerr
	}
	if err != nil {
		return err
	}
	if app.opts.watch {
		return app.watch(ctx, cfg, input, output)
	}
	return app.generate(ctx, cfg, input, output)
}

// configure loads the config file, if any, and applies flags that were set
// explicitly on the command line.
func (app *cliApp) configure(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if app.opts.configPath != "" {
		loaded, err := config.Load(app.opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if flags.Changed("provider") {
		cfg.Generate.Provider = app.opts.provider
	}
	if flags.Changed("format") {
		cfg.Generate.Format = app.opts.format
	}
	if flags.Changed("workers") {
		cfg.Generate.Workers = app.opts.workers
	}
	if flags.Changed("python") {
		cfg.Python.Interpreter = app.opts.python
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = app.opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %v", derrors.Usage, err)
	}
	app.log = newLogger(app.stderr, cfg.LogLevel())
	return cfg, nil
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func (app *cliApp) generate(ctx context.Context, cfg config.Config, input, output string) error {
	if err := removeOutput(output); err != nil {
		return err
	}
	provider, err := newProvider(cfg, input)
	if err != nil {
		return err
	}
	syms, err := provider.Symbols(ctx)
	if err != nil {
		return err
	}
	app.log.WithFields(logrus.Fields{
		"input":   input,
		"symbols": len(syms),
	}).Debug("loaded symbols")

	md, err := reference.Build(ctx, syms, reference.Options{
		Workers: cfg.Generate.Workers,
		Logger:  app.log,
	})
	if err != nil {
		return err
	}
	data, err := encode(cfg.Generate.Format, md)
	if err != nil {
		return err
	}
	if err := writeOutput(output, app.stdout, data); err != nil {
		return err
	}
	app.log.WithField("output", output).Debug("wrote reference document")
	return nil
}

// listSymbols writes the symbols discovered in input as a YAML manifest.
func (app *cliApp) listSymbols(ctx context.Context, flags *pflag.FlagSet, input string) error {
	cfg, err := app.configure(flags)
	if err != nil {
		return err
	}
	provider, err := newProvider(cfg, input)
	if err != nil {
		return err
	}
	syms, err := provider.Symbols(ctx)
	if err != nil {
		return err
	}
	module := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return manifest.Encode(app.stdout, module, syms)
}

func newProvider(cfg config.Config, input string) (symbol.Provider, error) {
	name := cfg.Generate.Provider
	if name == config.ProviderAuto {
		name = detectProvider(input)
	}
	switch name {
	case config.ProviderGo:
		return gosource.New(input, ""), nil
	case config.ProviderManifest:
		return manifest.New(input), nil
	case config.ProviderPython:
		return pyintrospect.New(input, cfg.Python.Interpreter), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", derrors.Usage, name)
	}
}

func detectProvider(input string) string {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".py":
		return config.ProviderPython
	case ".yaml", ".yml", ".json":
		return config.ProviderManifest
	default:
		return config.ProviderGo
	}
}

func removeOutput(path string) error {
	if path == "" || path == "-" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing stale output: %w", err)
	}
	return nil
}

var legacyLongFlagSet = map[string]struct{}{
	"config":    {},
	"provider":  {},
	"format":    {},
	"workers":   {},
	"python":    {},
	"log-level": {},
	"watch":     {},
}

// normalizeLegacyArgs rewrites single-dash long flags such as -watch or
// -format=html to their double-dash form.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[1:], "=")
		if _, ok := legacyLongFlagSet[name]; ok {
			if hasValue {
				converted = append(converted, "--"+name+"="+value)
			} else {
				converted = append(converted, "--"+name)
			}
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
