// internal/render/loader.go
package render

import (
	"fmt"

	"go-beastfight/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage читает PNG с диска в *ebiten.Image. Подходит как assets.LoaderFunc.
func LoadImage(path string) (assets.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// Loader — LoadImage в виде assets.Loader.
var Loader = assets.LoaderFunc(LoadImage)

// asEbiten достаёт картинку ebiten из дескриптора. Чужие и nil дескрипторы не рисуются.
func asEbiten(img assets.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	e, ok := img.(*ebiten.Image)
	if !ok || e == nil {
		return nil
	}
	return e
}
