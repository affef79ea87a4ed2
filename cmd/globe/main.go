package main

import (
	"globe/internal/commands"
	"globe/internal/debug"
	"globe/internal/engineconfig"
	"globe/internal/env"
	"globe/internal/fonts"
	"globe/internal/graphics"
	"globe/internal/input"
	"globe/internal/logger"
	"globe/internal/orbit"
	"globe/internal/scene"
	"globe/internal/scenedef"
	"globe/internal/terminal"
	"globe/internal/textures"
)

func main() {
	log := logger.New(logger.LogFilePath)
	if err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}
	prefs, err := engineconfig.Load(engineconfig.EngineConfigPath)
	if err != nil {
		log.Log(err.Error())
	}
	roots := scenedef.RootsWith(env.Get(env.AssetDirKey, ""))
	def, err := scenedef.Load(scenedef.Resolve(roots, scenedef.DefinitionPath))
	if err != nil {
		log.Log(err.Error())
	}

	ctl := orbit.New(def.Distance)
	ctl.SetSpinPerTick(def.SpinPerTick)
	pointer := input.NewPoller(graphics.Mouse{})
	loader := textures.NewLoader(prefs.MaxTextureSize, 3)

	overlay := debug.New()
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowMemAlloc = prefs.ShowMemAlloc
	overlay.ShowOrientation = prefs.ShowOrientation

	reg := commands.NewRegistry()
	registerCommands(reg, log, ctl, overlay, &prefs)
	term := terminal.New(log, reg)

	var scn *scene.Scene
	upload := func(r textures.Result) {
		if r.Err != nil {
			log.Log(r.Err.Error())
			return
		}
		if scn.Upload(r) {
			b := r.Img.Bounds()
			log.Logf("texture %s: %s (%dx%d)", r.Key, r.Path, b.Dx(), b.Dy())
		}
	}

	graphics.Run(graphics.Window{
		Title:     "globe",
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		TargetFPS: prefs.TargetFPS,
		MSAA:      prefs.MSAA,
	}, graphics.Hooks{
		Setup: func(width, height int) {
			scn = scene.New(def, width, height)
			scn.Request(loader, roots)
			if path := fonts.First(roots); path != "" {
				if font, ok := graphics.LoadFont(path); ok {
					term.SetFont(font)
					overlay.SetFont(font)
				}
			}
		},
		Update: func() {
			term.Update()
			pointer.Update(ctl)
			ctl.Tick()
			loader.Poll(upload)
			scn.SetRotation(ctl.Rotation())
			scn.SetDistance(ctl.Distance())
			overlay.SetView(ctl.Orientation(), ctl.Spin(), ctl.Distance())
		},
		Draw: func() {
			scn.Draw()
			term.Draw()
			overlay.Draw()
		},
		Teardown: func() {
			scn.Unload()
		},
	})
}
