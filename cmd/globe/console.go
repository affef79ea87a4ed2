package main

import (
	"flag"

	"globe/internal/commands"
	"globe/internal/debug"
	"globe/internal/engineconfig"
	"globe/internal/logger"
	"globe/internal/orbit"
)

// registerCommands wires the console's "cmd ..." subcommands to the viewer state.
func registerCommands(reg *commands.Registry, log *logger.Logger, ctl *orbit.Controller, overlay *debug.Debug, prefs *engineconfig.EnginePrefs) {
	reg.Register("reset", "restore orientation, spin and zoom", nil, func() error {
		ctl.Reset()
		return nil
	})

	zoom := flag.NewFlagSet("zoom", flag.ContinueOnError)
	distance := zoom.Float64("distance", float64(orbit.DefaultDistance), "camera distance along +Z")
	reg.Register("zoom", "move the camera", zoom, func() error {
		ctl.SetDistance(float32(*distance))
		log.Logf("camera distance %.2f", ctl.Distance())
		return nil
	})

	spin := flag.NewFlagSet("spin", flag.ContinueOnError)
	rate := spin.Float64("rate", float64(orbit.SpinPerTick), "radians per frame")
	reg.Register("spin", "set the spin per frame", spin, func() error {
		ctl.SetSpinPerTick(float32(*rate))
		return nil
	})

	toggle := func(name, summary string, set func(bool)) {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		show := fs.Bool("show", true, "")
		reg.Register(name, summary, fs, func() error {
			set(*show)
			return nil
		})
	}
	toggle("fps", "FPS counter", func(b bool) {
		overlay.ShowFPS, prefs.ShowFPS = b, b
	})
	toggle("mem", "heap usage", func(b bool) {
		overlay.ShowMemAlloc, prefs.ShowMemAlloc = b, b
	})
	toggle("orient", "orientation readout", func(b bool) {
		overlay.ShowOrientation, prefs.ShowOrientation = b, b
	})

	reg.Register("save", "write overlay settings to "+engineconfig.EngineConfigPath, nil, func() error {
		if err := engineconfig.Save(engineconfig.EngineConfigPath, *prefs); err != nil {
			return err
		}
		log.Log("saved " + engineconfig.EngineConfigPath)
		return nil
	})

	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			log.Log("cmd " + line)
		}
		return nil
	})
}
