package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"

	"github.com/jdginn/go-card-reflect/card"
	"github.com/jdginn/go-card-reflect/card/config"
	"github.com/jdginn/go-card-reflect/card/runs"
	"github.com/jdginn/go-card-reflect/gallery"
)

var CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Minimum level of log messages"`

	Render  RenderCmd  `cmd:"" help:"Render a single reflective card"`
	Batch   BatchCmd   `cmd:"" help:"Render every image in a directory"`
	Gallery GalleryCmd `cmd:"" help:"Browse a directory of images and render them interactively"`
	Profile ProfileCmd `cmd:"" help:"Plot how the reflection of a card fades"`
	Init    InitCmd    `cmd:"" help:"Write a config file with the default settings"`
}

type RenderCmd struct {
	Config string `arg:"" name:"config" help:"YAML render config"`
	Image  string `name:"image" help:"source image, overrides input.image"`
	Output string `short:"o" name:"output" help:"output PNG, overrides output.path"`
}

func (c RenderCmd) Run() error {
	cfg, g, s, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	source := firstNonEmpty(c.Image, cfg.Input.Image)
	if source == "" {
		return fmt.Errorf("no source image: set input.image or pass --image")
	}

	output := firstNonEmpty(c.Output, cfg.Output.Path)
	if output == "" {
		run, err := newRun(cfg, c.Config)
		if err != nil {
			return err
		}
		output = run.GetFilePath("card.png")
	}

	res, err := card.RenderJob(card.Job{Source: source, Output: output}, g, s)
	if err != nil {
		return err
	}
	slog.Info("rendered card", "output", res.Output, "size", humanize.Bytes(uint64(res.Bytes)), "elapsed", res.Elapsed)
	return nil
}

type BatchCmd struct {
	Config  string `arg:"" name:"config" help:"YAML render config"`
	Dir     string `arg:"" name:"dir" help:"directory of source images" type:"existingdir"`
	Workers int    `name:"workers" default:"0" help:"concurrent renders, 0 for one per CPU"`
}

func (c BatchCmd) Run() error {
	cfg, g, s, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	run, err := newRun(cfg, c.Config)
	if err != nil {
		return err
	}
	jobs, err := card.JobsForDir(c.Dir, run.Path)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no images found in %s", c.Dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := card.RenderBatch(ctx, jobs, g, s, c.Workers)
	if err != nil {
		return err
	}
	var total int64
	for _, res := range results {
		total += res.Bytes
	}
	slog.Info("rendered batch",
		"cards", len(results),
		"run", run.ID,
		"size", humanize.Bytes(uint64(total)),
		"elapsed", time.Since(start))
	return nil
}

type GalleryCmd struct {
	Dir    string `arg:"" name:"dir" help:"directory of source images" type:"existingdir"`
	Config string `name:"config" help:"YAML render config, defaults apply when omitted"`
}

func (c GalleryCmd) Run() error {
	cfg := config.Default()
	g, s := cfg.CardGeometry(), card.DefaultStyle()
	if c.Config != "" {
		var err error
		if cfg, g, s, err = loadConfig(c.Config); err != nil {
			return err
		}
	}

	jobs, err := card.JobsForDir(c.Dir, "")
	if err != nil {
		return err
	}
	paths := make([]string, len(jobs))
	for i, job := range jobs {
		paths[i] = job.Source
	}

	run, err := newRun(cfg, c.Config)
	if err != nil {
		return err
	}
	return gallery.Run(paths, func(path string) (card.Result, error) {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
		return card.RenderJob(card.Job{Source: path, Output: run.GetFilePath(name)}, g, s)
	})
}

type ProfileCmd struct {
	Config string `arg:"" name:"config" help:"YAML render config"`
	Image  string `name:"image" help:"source image, overrides input.image"`
	Output string `short:"o" name:"output" default:"profile.png" help:"chart file (.png, .svg, .pdf)"`
	Width  int    `name:"width" default:"640" help:"chart width in points"`
	Height int    `name:"height" default:"400" help:"chart height in points"`
}

func (c ProfileCmd) Run() error {
	cfg, g, s, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	source := firstNonEmpty(c.Image, cfg.Input.Image)
	if source == "" {
		return fmt.Errorf("no source image: set input.image or pass --image")
	}
	src, err := card.LoadImage(source)
	if err != nil {
		return err
	}
	if err := card.PlotFadeProfile(card.Render(src, g, s), g, s, c.Width, c.Height, c.Output); err != nil {
		return err
	}
	slog.Info("wrote fade profile", "output", c.Output)
	return nil
}

type InitCmd struct {
	Path string `arg:"" name:"path" help:"where to write the config"`
}

func (c InitCmd) Run() error {
	if err := config.SaveToFile(config.Default(), c.Path); err != nil {
		return err
	}
	slog.Info("wrote default config", "path", c.Path)
	return nil
}

func loadConfig(path string) (*config.RenderConfig, card.Geometry, card.Style, error) {
	cfg, err := config.LoadFromFile(path, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return nil, card.Geometry{}, card.Style{}, err
	}
	s, err := cfg.CardStyle()
	if err != nil {
		return nil, card.Geometry{}, card.Style{}, err
	}
	return cfg, cfg.CardGeometry(), s, nil
}

// newRun creates a run directory and keeps a copy of the config used for it.
func newRun(cfg *config.RenderConfig, configPath string) (*runs.RunDir, error) {
	run, err := runs.CreateRunDirectory(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := run.CopyConfigFile(configPath); err != nil {
			return nil, err
		}
	}
	slog.Debug("created run directory", "path", run.Path)
	return run, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
	card.SetLogger(logger)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cardreflect"),
		kong.Description("Render images as rounded cards with a blurred, fading reflection."),
		kong.UsageOnError(),
	)
	setupLogger(CLI.LogLevel)
	ctx.FatalIfErrorf(ctx.Run())
}
