package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

func (g *Gui) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{
		R: 20,
		G: 24,
		B: 33,
		A: 255,
	})

	// The collage goes first so the tears fall on top of it.
	for i := range g.world.Collage {
		c := &g.world.Collage[i]
		img := g.imgCollage[g.clampIdx(c.ImgIdx, len(g.imgCollage))]
		alpha := float64(c.DrawOpacity()) / 255
		DrawSpriteCentered(screen, img, c.Pos.X, c.Pos.Y, c.Zoom, alpha)
	}

	// Newest tears first, so that older tears end up painted over younger
	// ones. This is the paint order the toy has always had.
	hue := g.world.CurrentHue()
	for i := len(g.world.Tears) - 1; i >= 0; i-- {
		t := &g.world.Tears[i]
		set := g.imgTearSets[t.ImgSet]
		img := set[g.clampIdx(t.ImgIdx, len(set))]

		// Size is the wanted width in pixels; turn it into a sprite zoom.
		targetSize := t.Size * t.Zoom()
		zoom := targetSize / float64(img.Bounds().Dx())
		alpha := t.Alpha() / 255

		if g.HueEnabled {
			DrawSpriteHue(screen, img, t.Pos.X, t.Pos.Y, zoom, alpha,
				math.Mod(hue+t.HueOffset, 360))
		} else {
			DrawSpriteCentered(screen, img, t.Pos.X, t.Pos.Y, zoom, alpha)
		}
	}

	if g.ShowHud {
		g.DrawHud(screen)
	}
}

// clampIdx guards image lookups against a live reload that shrank an image
// set while tears picked from the larger set are still falling.
func (g *Gui) clampIdx(idx int64, n int) int {
	return min(int(idx), n-1)
}

func (g *Gui) DrawHud(screen *ebiten.Image) {
	hudColor := color.NRGBA{R: 210, G: 215, B: 225, A: 255}

	// text.Draw puts the baseline at y, so most of the text sits above the y
	// passed in. Keeping a margin of roughly the font size below the baseline
	// leaves room for descenders.
	msg := "hold click / space - cry    s - collage    t - tear set"
	text.Draw(screen, msg, g.defaultFont,
		12, screen.Bounds().Dy()-12, hudColor)

	if g.devModeEnabled {
		stats := fmt.Sprintf("FPS %.0f  tears %d  collage %d",
			ebiten.ActualFPS(), len(g.world.Tears), len(g.world.Collage))
		text.Draw(screen, stats, g.defaultFont, 12, 24, hudColor)
	}
}
