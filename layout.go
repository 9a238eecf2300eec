package main

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height via
	// outsideWidth, outsideHeight, and I return the size I want for the
	// bitmap that will be drawn in the window. Ebitengine scales that bitmap
	// to fit the window, preserving its aspect ratio.
	//
	// This toy wants the simplest possible arrangement: one pixel of the
	// drawing surface per pixel of the window, whatever the window size is.
	// Returning the outside size gives exactly that, and makes resize
	// handling automatic: ebitengine calls Layout again whenever the window
	// changes, so the surface always matches and no scaling ever happens.
	//
	// The world learns the size through PlayerInput every frame. It matters
	// for the collage, whose placement ranges are a fraction of the live
	// surface size, not of the size the program started with.
	g.screenSize = Pt{outsideWidth, outsideHeight}
	return outsideWidth, outsideHeight
}
