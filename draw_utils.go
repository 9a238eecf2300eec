package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// DrawSpriteCentered draws img with its center at (x, y), scaled by zoom and
// with its alpha multiplied by alpha (0..1). x and y are in the following
// coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawSpriteCentered(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64, zoom float64, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	imgSize := img.Bounds().Size()
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(x-zoom*float64(imgSize.X)/2, y-zoom*float64(imgSize.Y)/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}

// DrawSpriteHue is DrawSpriteCentered with the sprite's hue additionally
// rotated by hue degrees. A hue rotation is not expressible as a per-channel
// scale, so this goes through ebitengine's colorm package and its full color
// matrix, which costs more than the ColorScale path. Use it only for sprites
// that actually want a tint.
func DrawSpriteHue(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64, zoom float64, alpha float64, hue float64) {
	op := &colorm.DrawImageOptions{}
	imgSize := img.Bounds().Size()
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(x-zoom*float64(imgSize.X)/2, y-zoom*float64(imgSize.Y)/2)

	var cm colorm.ColorM
	cm.RotateHue(hue * math.Pi / 180)
	cm.Scale(1, 1, 1, alpha)
	colorm.DrawImage(screen, img, cm, op)
}
