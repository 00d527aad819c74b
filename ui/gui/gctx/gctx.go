package gctx

import (
	"candyboard/src/control"
	"candyboard/src/logx"
	"candyboard/ui/gui/gbase"
	"candyboard/ui/gui/gbase/gconf"
	"candyboard/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Controller   *control.Controller
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(c *control.Controller, a *ghelper.GUIAssetsWorker, cfg *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Controller:   c,
		AssetsWorker: a,
		Config:       cfg,
		Theme:        gbase.PaletteFromString(cfg.Theme),
		Logx:         l,
	}
}
