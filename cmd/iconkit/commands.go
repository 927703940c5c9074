package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Mavwarf/iconkit/internal/bundle"
	"github.com/Mavwarf/iconkit/internal/config"
	"github.com/Mavwarf/iconkit/internal/console"
	"github.com/Mavwarf/iconkit/internal/history"
	"github.com/Mavwarf/iconkit/internal/iconset"
	"github.com/Mavwarf/iconkit/internal/paths"
)

const defaultHistoryLimit = 10

// loadConfig loads the config and applies CLI overrides.
func loadConfig(opts cliOpts) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.Source != "" {
		cfg.Source = opts.Source
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func resolveLayout(opts cliOpts, cfg config.Config) (paths.Layout, error) {
	root, err := cfg.ResolveRoot(opts.Root)
	if err != nil {
		return paths.Layout{}, fmt.Errorf("resolving project root: %w", err)
	}
	return paths.NewLayout(root, cfg.Source), nil
}

func alphaOptions(cfg config.Config) iconset.AlphaOptions {
	return iconset.AlphaOptions{
		Flatten:    cfg.Alpha == config.AlphaFlatten,
		Background: cfg.BackgroundColor(),
	}
}

// statusSlug turns a generation error into a history status word.
func statusSlug(err error) string {
	if err == nil {
		return history.StatusOK
	}
	k := iconset.KindOf(err)
	if k == 0 {
		return "error"
	}
	return strings.ReplaceAll(k.String(), " ", "_")
}

// relTo returns path relative to root for display, or path unchanged.
func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

func generateCmd(opts cliOpts, p *console.Printer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		p.Error(err)
		return 1
	}
	layout, err := resolveLayout(opts, cfg)
	if err != nil {
		p.Error(err)
		return 1
	}

	p.Info("Source: %s", layout.Source)
	p.Info("Output: %s", layout.OutputDir)

	g := &iconset.Generator{
		Layout: layout,
		Alpha:  alphaOptions(cfg),
		Progress: func(t iconset.Target) {
			p.Detail("  %-48s %dx%d", relTo(layout.Root, t.Path()), t.Size, t.Size)
		},
	}
	res, err := g.Generate()

	rec := history.Record{
		Time:   time.Now(),
		Root:   layout.Root,
		Source: filepath.Base(layout.Source),
		Status: statusSlug(err),
		Files:  len(res.Written),
	}
	if err != nil {
		p.Error(fmt.Errorf("icon generation failed: %w", err))
		rec.Detail = err.Error()
		logHistory(cfg, rec, p)
		return iconset.KindOf(err).ExitCode()
	}

	p.Success("Icons generated (%d files)", len(res.Written))
	p.Sizes(iconset.Sizes)

	o := bundle.TryCompile(bundle.Select(cfg.Bundle), layout.IconsetDir, layout.BundlePath)
	reportBundle(p, o)
	rec.Bundle = o.Status.String()

	logHistory(cfg, rec, p)
	return 0
}

// reportBundle prints the outcome of the icns step. Failures stay quiet
// unless --verbose is set.
func reportBundle(p *console.Printer, o bundle.Outcome) {
	switch o.Status {
	case bundle.Compiled:
		p.Success("icns written: %s", o.Path)
	case bundle.Failed:
		p.Detail("icns step failed (%s): %v", o.Compiler, o.Err)
	default:
		if o.Compiler == "" {
			p.Detail("icns step disabled")
		} else {
			p.Info("%s not found, skipping icon.icns", o.Compiler)
		}
	}
}

// logHistory records the run when history is enabled. Failures only warn.
func logHistory(cfg config.Config, rec history.Record, p *console.Printer) {
	store, err := history.Open(cfg.History, paths.DataDir())
	if err != nil {
		p.Warn("warning: history: %v", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()
	if err := store.Log(rec); err != nil {
		p.Warn("warning: history: %v", err)
	}
}

func planCmd(opts cliOpts, p *console.Printer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		p.Error(err)
		return 1
	}
	layout, err := resolveLayout(opts, cfg)
	if err != nil {
		p.Error(err)
		return 1
	}

	p.Info("Source: %s", relTo(layout.Root, layout.Source))
	for _, t := range iconset.Plan(layout) {
		p.Info("  %-48s %dx%d", relTo(layout.Root, t.Path()), t.Size, t.Size)
	}
	if c := bundle.Select(cfg.Bundle); c != nil {
		p.Info("  %-48s (%s)", relTo(layout.Root, layout.BundlePath), c.Name())
	}
	return 0
}

func historyCmd(opts cliOpts, p *console.Printer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		p.Error(err)
		return 1
	}
	store, err := history.Open(cfg.History, paths.DataDir())
	if err != nil {
		p.Error(err)
		return 1
	}
	if store == nil {
		p.Info(`History is off. Set "history": "file" or "sqlite" in %s.`, paths.ConfigFileName)
		return 0
	}
	defer store.Close()

	args := opts.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "clear":
			if err := store.Clear(); err != nil {
				p.Error(err)
				return 1
			}
			p.Info("History cleared (%s)", store.Path())
			return 0
		case "clean":
			if len(args) < 2 {
				p.Error(fmt.Errorf("usage: iconkit history clean <days>"))
				return 1
			}
			days, err := strconv.Atoi(args[1])
			if err != nil || days < 1 {
				p.Error(fmt.Errorf("days must be a positive number, got %q", args[1]))
				return 1
			}
			removed, err := store.Clean(days)
			if err != nil {
				p.Error(err)
				return 1
			}
			p.Info("Removed %d run(s) older than %d day(s)", removed, days)
			return 0
		}
	}

	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			p.Error(fmt.Errorf("expected a run count, got %q", args[0]))
			return 1
		}
		limit = n
	}

	records, err := store.Entries(limit)
	if err != nil {
		p.Error(err)
		return 1
	}
	if len(records) == 0 {
		p.Info("No runs recorded yet.")
		return 0
	}
	for _, r := range records {
		line := fmt.Sprintf("%s  %-15s %2d files", r.Time.Local().Format("2006-01-02 15:04:05"), r.Status, r.Files)
		if r.Bundle != "" {
			line += "  icns=" + r.Bundle
		}
		line += "  " + filepath.Join(r.Root, r.Source)
		p.Info("%s", line)
		if r.Detail != "" {
			p.Detail("    %s", r.Detail)
		}
	}
	return 0
}
