package gimages

import (
	"candyboard/src/base"
	"candyboard/ui/gui/ghelper/gshape"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// generated sprites are drawn at this size and scaled like the files
const fallbackSide = 128

var pieceTypes = []base.PieceType{base.King, base.Queen, base.Bishop, base.Knight, base.Rook, base.Pawn}

// LoadImageAssets reads <workdir>/<key>.png for every piece ("wK.png",
// "bP.png", ...). Missing files are replaced by generated sprites and their
// keys are returned in generated.
func LoadImageAssets(workdir string) (images map[string]*ebiten.Image, generated []string, err error) {
	images = make(map[string]*ebiten.Image, 12)
	for _, c := range []base.Color{base.White, base.Black} {
		for _, pt := range pieceTypes {
			p := base.Piece{Type: pt, Color: c}
			key := p.AssetKey()
			img, _, err := ebitenutil.NewImageFromFile(filepath.Join(workdir, key+".png"))
			if errors.Is(err, fs.ErrNotExist) {
				images[key] = ebiten.NewImageFromImage(gshape.RenderPiece(fallbackSide, p))
				generated = append(generated, key)
				continue
			} else if err != nil {
				return nil, nil, err
			}
			images[key] = img
		}
	}
	return images, generated, nil
}
