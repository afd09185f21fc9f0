package render

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mars-mission/mars/internal/media"
)

// Images maps image IDs to loaded textures. Unconfigured IDs are absent
// and draw as nothing.
type Images map[media.ImageID]*ebiten.Image

// LoadImages reads every non-empty path. Any failure aborts the load.
func LoadImages(paths map[media.ImageID]string, log *slog.Logger) (Images, error) {
	images := make(Images, len(paths))
	for id, path := range paths {
		if path == "" {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, media.NewAssetError("load image", path, err)
		}
		b := img.Bounds()
		log.Info("image loaded", "path", path, "width", b.Dx(), "height", b.Dy())
		images[id] = img
	}
	return images, nil
}
