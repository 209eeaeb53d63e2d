package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/agentflare-ai/pydown/internal/config"
	"github.com/agentflare-ai/pydown/internal/derrors"
)

var watchedExts = map[string]bool{
	".go":   true,
	".py":   true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// watch generates the document once and then again whenever the input
// changes, until ctx is done. Failed generations are logged, not returned.
func (app *cliApp) watch(ctx context.Context, cfg config.Config, input, output string) error {
	dir, err := watchDir(input)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	app.regenerate(ctx, cfg, input, output)
	app.log.WithField("dir", dir).Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !triggersRegeneration(event, input, output) {
				continue
			}
			app.log.WithField("file", event.Name).Info("change detected")
			app.regenerate(ctx, cfg, input, output)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			app.log.WithError(err).Warn("watcher error")
		}
	}
}

func (app *cliApp) regenerate(ctx context.Context, cfg config.Config, input, output string) {
	if err := app.generate(ctx, cfg, input, output); err != nil {
		app.log.WithError(err).Error("generation failed")
		return
	}
	app.log.WithField("output", output).Info("reference document written")
}

// watchDir returns the directory to watch for input: the input itself
// when it is a directory, otherwise its parent.
func watchDir(input string) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return "", fmt.Errorf("%w: --watch needs a file or directory input: %v", derrors.Usage, err)
	}
	if info.IsDir() {
		return input, nil
	}
	return filepath.Dir(input), nil
}

func triggersRegeneration(event fsnotify.Event, input, output string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	if output != "-" && sameFile(name, output) {
		return false
	}
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		return sameFile(name, input)
	}
	return watchedExts[filepath.Ext(name)]
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
