package main

import (
	"embed"
	_ "image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

//go:embed data/*
var embeddedFiles embed.FS

type Gui struct {
	Config
	world          World
	FSys           FS
	imgTearSets    [2][]*ebiten.Image
	imgCollage     []*ebiten.Image
	defaultFont    font.Face
	folderWatchers []FolderWatcher
	screenSize     Pt
	activeTouch    ebiten.TouchID
	touchActive    bool
	devModeEnabled bool
}

// Config holds the knobs that select between the variants of the toy without
// recompiling. The historical long-lived tinted variant is TearLifespan 300 +
// HueEnabled; the short-lived throttled variant is TearLifespan 150 +
// AdaptiveEmission.
type Config struct {
	TearLifespan     int64 `yaml:"TearLifespan"`
	HueEnabled       bool  `yaml:"HueEnabled"`
	AdaptiveEmission bool  `yaml:"AdaptiveEmission"`
	ShowHud          bool  `yaml:"ShowHud"`
}

func (g *Gui) worldParams() WorldParams {
	return WorldParams{
		TearLifespan:     g.TearLifespan,
		AdaptiveEmission: g.AdaptiveEmission,
		NTearImgs: [2]int64{
			int64(len(g.imgTearSets[0])),
			int64(len(g.imgTearSets[1]))},
		NCollageImgs: int64(len(g.imgCollage)),
	}
}

func main() {
	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowTitle("tears")
	// The drawing surface follows the window, so the window may as well be
	// resizable.
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var g Gui
	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		for _, folder := range []string{
			"data", "data/tears-blue", "data/tears-gold", "data/collage"} {
			g.folderWatchers = append(g.folderWatchers,
				FolderWatcher{Folder: folder})
		}
		// Poll once now so the watchers record the current timestamps.
		// Otherwise the first frame would see everything as changed and
		// reload data that was just loaded.
		for i := range g.folderWatchers {
			g.folderWatchers[i].FolderContentsChanged()
		}
	}

	if len(os.Args) == 2 && os.Args[1] == "developer-mode-enabled" {
		g.devModeEnabled = true
	}

	g.LoadGuiData()
	g.world = NewWorld(g.worldParams(), time.Now().UnixNano())

	err := ebiten.RunGame(&g)
	Check(err)
}
