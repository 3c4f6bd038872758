package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/ocallegari/go-sh1107/sh1107"
	"github.com/ocallegari/go-sh1107/sh1107/backend/terminal"
	"github.com/ocallegari/go-sh1107/sh1107/config"
	"github.com/ocallegari/go-sh1107/sh1107/timing"
)

func main() {
	app := cli.NewApp()

	app.Name = "sh1107emu"
	app.Description = "An SH1107 OLED display controller emulator"
	app.Action = runEmulator

	app.Run(os.Args)
}

func runEmulator(c *cli.Context) error {
	model := config.Default()
	script := sh1107.DemoScript(model.Width, model.Height)

	if c.NArg() > 0 {
		file, err := os.Open(c.Args().First())
		if err != nil {
			return err
		}
		defer file.Close()

		script, err = sh1107.ParseScript(file)
		if err != nil {
			return err
		}
	}

	emu := sh1107.NewEmulator(sh1107.Options{
		Model:   model,
		Backend: terminal.New(),
		Limiter: timing.NewTickerLimiter(),
		Script:  script,
	})

	return emu.Run(0)
}
