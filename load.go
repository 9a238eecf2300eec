package main

import (
	"embed"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// When reading from the disk, read over and over until a full read is
	// possible. Editors and image exporters write files in several steps, so
	// a reload triggered mid-write can catch a half-written PNG. Retrying
	// until everything decodes is a hack but a very effective one.
	// When reading from the embedded filesystem nothing can be mid-write, so
	// crash on the first failure. On the browser in particular we want the
	// error in the developer console, not a page that loads forever and
	// reports nothing.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		g.imgTearSets[0] = LoadImages(g.FSys, "data/tears-blue", "*.png")
		g.imgTearSets[1] = LoadImages(g.FSys, "data/tears-gold", "*.png")
		g.imgCollage = LoadImages(g.FSys, "data/collage", "*.png")

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}
