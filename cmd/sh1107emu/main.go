package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/ocallegari/go-sh1107/sh1107"
	"github.com/ocallegari/go-sh1107/sh1107/backend"
	"github.com/ocallegari/go-sh1107/sh1107/backend/headless"
	"github.com/ocallegari/go-sh1107/sh1107/backend/terminal"
	"github.com/ocallegari/go-sh1107/sh1107/config"
	"github.com/ocallegari/go-sh1107/sh1107/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "sh1107emu"
	app.Description = "An SH1107 OLED display controller emulator"
	app.Usage = "sh1107emu [options] [bus script file]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "script",
			Usage: "Path to a bus script (hex bytes, one transaction per line)",
		},
		cli.StringFlag{
			Name:  "model",
			Usage: "Display model preset (" + strings.Join(config.PresetNames(), ", ") + ")",
			Value: config.Default().Name,
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML model description (overrides --model)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a terminal interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
	}
	app.Action = runEmulator

	if err := app.Run(os.Args); err != nil {
		slog.Error("error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	model, err := resolveModel(c)
	if err != nil {
		return err
	}

	script, err := resolveScript(c, model)
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		return runHeadless(c, model, script)
	}

	emu := sh1107.NewEmulator(sh1107.Options{
		Model:   model,
		Backend: terminal.New(),
		Limiter: timing.NewTickerLimiter(),
		Script:  script,
	})

	return emu.Run(0)
}

func resolveModel(c *cli.Context) (config.Model, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}

	name := c.String("model")
	model, ok := config.Preset(name)
	if !ok {
		return config.Model{}, fmt.Errorf("unknown model %q (available: %s)",
			name, strings.Join(config.PresetNames(), ", "))
	}
	return model, nil
}

func resolveScript(c *cli.Context, model config.Model) ([]sh1107.Transaction, error) {
	path := c.String("script")
	if path == "" && c.NArg() > 0 {
		path = c.Args().Get(0)
	}

	if path == "" {
		slog.Info("no bus script given, using demo traffic")
		return sh1107.DemoScript(model.Width, model.Height), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	script, err := sh1107.ParseScript(file)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded bus script", "path", path, "transactions", len(script))
	return script, nil
}

func runHeadless(c *cli.Context, model config.Model, script []sh1107.Transaction) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames with a positive value")
	}

	snapshots := headless.SnapshotConfig{
		Interval:  c.Int("snapshot-interval"),
		Directory: c.String("snapshot-dir"),
	}
	if snapshots.Interval > 0 && snapshots.Directory == "" {
		dir, err := os.MkdirTemp("", "sh1107-snapshots-*")
		if err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		snapshots.Directory = dir
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	var be backend.Backend = headless.New(snapshots)
	emu := sh1107.NewEmulator(sh1107.Options{
		Model:   model,
		Backend: be,
		Limiter: timing.NewNoOpLimiter(),
		Script:  script,
	})

	if err := emu.Run(frames); err != nil {
		return err
	}

	if snapshots.Interval > 0 {
		slog.Info("headless run completed", "frames", frames, "snapshots_saved_to", snapshots.Directory)
	} else {
		slog.Info("headless run completed", "frames", frames)
	}
	return nil
}
