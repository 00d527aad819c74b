package ghelper

import (
	"candyboard/src/logx"
	"candyboard/ui/gui/gbase/gconf"
	"candyboard/ui/gui/ghelper/gfont"
	"candyboard/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	pieceImages map[string]*ebiten.Image
	fonts       *gfont.Fonts
}

func NewGUIAssetsWorker(cfg *gconf.Config, logger logx.Logger) (*GUIAssetsWorker, error) {
	imgs, generated, err := gimages.LoadImageAssets(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	if len(generated) > 0 {
		logger.Warnf("no sprites in %q for %v, using generated ones", cfg.AssetsDir, generated)
	}
	f, err := gfont.LoadFonts(cfg.Font)
	if err != nil {
		logger.Warnf("error load font %q: %v, using bundled face", cfg.Font, err)
		if f, err = gfont.LoadFonts(""); err != nil {
			return nil, err
		}
	}
	return &GUIAssetsWorker{pieceImages: imgs, fonts: f}, nil
}

// Piece returns the sprite for an asset key such as "wQ".
func (aw *GUIAssetsWorker) Piece(key string) *ebiten.Image {
	return aw.pieceImages[key]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
