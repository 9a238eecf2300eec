package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Gui) Update() error {
	// In a development run, reload everything when something under data/
	// changes. This also refreshes the world's parameters, so editing
	// config.yaml takes effect on the running toy. Tears and collage items
	// that are already alive keep the parameters they were created with.
	changed := false
	for i := range g.folderWatchers {
		if g.folderWatchers[i].FolderContentsChanged() {
			changed = true
		}
	}
	if changed {
		g.LoadGuiData()
		g.world.WorldParams = g.worldParams()
	}

	var input PlayerInput
	x, y := ebiten.CursorPosition()
	input.Pos = Pt{x, y}

	// The first touch drives emission exactly like the mouse button. Track
	// its id so that a second finger doesn't steal the position or end the
	// emission when it lifts.
	justPressedTouches := inpututil.AppendJustPressedTouchIDs(nil)
	if !g.touchActive && len(justPressedTouches) > 0 {
		g.touchActive = true
		g.activeTouch = justPressedTouches[0]
		input.JustPressed = true
	}
	if g.touchActive {
		if inpututil.IsTouchJustReleased(g.activeTouch) {
			g.touchActive = false
			input.JustReleased = true
		} else {
			tx, ty := ebiten.TouchPosition(g.activeTouch)
			input.Pos = Pt{tx, ty}
		}
	}

	// Mouse and the space key mirror each other. Whichever edge arrives
	// first wins; the World ignores a press while already emitting and a
	// release while already idle.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		input.JustPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		input.JustReleased = true
	}

	input.ToggleCollage = inpututil.IsKeyJustPressed(ebiten.KeyS)
	input.ToggleImageSet = inpututil.IsKeyJustPressed(ebiten.KeyT)
	input.ScreenSize = g.screenSize
	input.Fps = ebiten.ActualFPS()

	g.world.Step(input)
	return nil
}
