package main

import "math"

// World rules
// - While the pointer is pressed (or a touch is active, or the space key is
// held) the world is emitting: one tear spawns at the input position every
// EmissionEvery frames.
// - A tear gets a random size, a random horizontal drift and a small random
// upward kick at creation, then falls with constant gravity until its life
// runs out, TearLifespan frames after it spawned.
// - A tear fades and shrinks as its life runs out. The World only tracks the
// remaining life; the alpha and zoom mappings derived from it are what the
// Gui draws with.
// - While the collage is running, one collage item spawns the moment the
// collage starts and one more every CollageSpawnPeriod frames. Items fade in
// and never fade out. Stopping the collage removes every item at once.
// - The World knows nothing about actual images. It only knows how many
// images each set has and picks indices. This is what keeps the simulation
// runnable without a window, which the tests rely on.

const Gravity = 0.12
const TearMinSize = 18.0
const TearMaxSize = 42.0
const TearMaxDrift = 1.5
const TearMaxUpKick = 2.5
const EmissionEveryN = 3
const ThrottledEmissionEveryN = 20
const ThrottleFpsFloor = 30.0
const CollageSpawnPeriod = 180
const CollageOpacityStep = 5
const CollageMinZoom = 0.6
const CollageMaxZoom = 1.0
const CollagePlacementMargin = 0.1
const HueDegreesPerImage = 45.0

type Pt struct {
	X int
	Y int
}

type Vec struct {
	X float64
	Y float64
}

type Tear struct {
	Pos       Vec
	Vel       Vec
	Size      float64
	Lifespan  int64
	Life      int64
	ImgSet    int64
	ImgIdx    int64
	HueOffset float64
}

// Advance integrates one frame of constant-gravity motion and burns one frame
// of life.
func (t *Tear) Advance() {
	t.Vel.Y += Gravity
	t.Pos.X += t.Vel.X
	t.Pos.Y += t.Vel.Y
	t.Life--
}

// Alpha maps the remaining life linearly to [0, 255]. A tear is fully opaque
// the frame it spawns and fully transparent the frame it dies.
func (t *Tear) Alpha() float64 {
	return float64(t.Life) / float64(t.Lifespan) * 255
}

// Zoom maps the remaining life linearly to [0.1, 1.0]. A tear shrinks as it
// gets closer to dying. Note that this is backwards from what you might
// expect of a falling drop (growing as it accelerates), but it is what the
// toy has always done, so it stays until someone decides otherwise.
func (t *Tear) Zoom() float64 {
	return 0.1 + float64(t.Life)/float64(t.Lifespan)*0.9
}

type CollageItem struct {
	Pos     Vec
	Zoom    float64
	Opacity int64
	ImgIdx  int64
}

// DrawOpacity is the opacity the item should be drawn with. Stepping only
// checks Opacity < 255 before adding the step, so Opacity can overshoot 255
// by up to CollageOpacityStep-1. The draw side must clamp, not the step side.
func (c *CollageItem) DrawOpacity() int64 {
	return min(c.Opacity, 255)
}

// WorldParams is everything that configures a World. The two historical
// variants of the toy are both expressible here: the long-lived tinted tears
// (TearLifespan 300, no throttle) and the short-lived throttled ones
// (TearLifespan 150, throttle on).
type WorldParams struct {
	TearLifespan     int64
	AdaptiveEmission bool
	NTearImgs        [2]int64
	NCollageImgs     int64
}

// PlayerInput is all the information that enters the World in one frame.
// Everything the simulation does is a function of the initial seed and the
// sequence of these, which is what makes two same-seeded Worlds fed the same
// inputs end up in the same state, bit for bit.
type PlayerInput struct {
	Pos            Pt
	JustPressed    bool
	JustReleased   bool
	ToggleImageSet bool
	ToggleCollage  bool
	ScreenSize     Pt
	Fps            float64
}

type World struct {
	WorldParams
	Rand               Rand
	FrameIdx           int64
	Tears              []Tear
	Collage            []CollageItem
	Emitting           bool
	EmissionStartFrame int64
	EmissionEvery      int64
	ActiveSet          int64
	CollageRunning     bool
	NextCollageSpawn   int64
}

func NewWorld(params WorldParams, seed int64) (w World) {
	w.WorldParams = params
	w.Rand = NewRand(seed)
	w.EmissionEvery = EmissionEveryN
	return
}

func (w *World) Step(input PlayerInput) {
	if input.JustPressed && !w.Emitting {
		w.Emitting = true
		// The hue animation counts frames from this moment.
		w.EmissionStartFrame = w.FrameIdx
	}
	if input.JustReleased && w.Emitting {
		w.Emitting = false
	}

	// Closed-loop throttle: when the renderer can't keep up, emit less.
	// Re-evaluated every frame so the rate recovers as soon as the frame rate
	// does. Fps == 0 means nobody measured anything yet, don't throttle on
	// that.
	if w.AdaptiveEmission {
		if input.Fps > 0 && input.Fps < ThrottleFpsFloor {
			w.EmissionEvery = ThrottledEmissionEveryN
		} else {
			w.EmissionEvery = EmissionEveryN
		}
	}

	// Tears that showed their last frame (life 0) leave now, before anything
	// else happens this frame. This way every tear gets drawn exactly once
	// with life 0 and the life seen from outside never goes negative.
	n := 0
	for i := range w.Tears {
		if w.Tears[i].Life > 0 {
			w.Tears[n] = w.Tears[i]
			n++
		}
	}
	w.Tears = w.Tears[:n]

	// Fade in before any spawning, so an item always spends its first frame
	// at opacity 0 no matter which path created it.
	for i := range w.Collage {
		if w.Collage[i].Opacity < 255 {
			w.Collage[i].Opacity += CollageOpacityStep
		}
	}

	if input.ToggleImageSet {
		w.ToggleImageSet()
	}
	if input.ToggleCollage {
		if w.CollageRunning {
			w.StopCollage()
		} else {
			w.StartCollage(input.ScreenSize)
		}
	}

	if w.CollageRunning && w.FrameIdx >= w.NextCollageSpawn {
		w.SpawnCollageItem(input.ScreenSize)
		w.NextCollageSpawn = w.FrameIdx + CollageSpawnPeriod
	}

	if w.Emitting && w.FrameIdx%w.EmissionEvery == 0 {
		w.SpawnTear(input.Pos)
	}

	// A tear spawned this frame moves this frame, like every other tear.
	for i := range w.Tears {
		w.Tears[i].Advance()
	}

	w.FrameIdx++
}

func (w *World) SpawnTear(pos Pt) {
	Assert(w.NTearImgs[w.ActiveSet] > 0)
	// The image is picked once. Toggling the active set later changes future
	// tears, never the ones already falling.
	imgIdx := w.Rand.RInt(0, w.NTearImgs[w.ActiveSet]-1)
	w.Tears = append(w.Tears, Tear{
		Pos:       Vec{float64(pos.X), float64(pos.Y)},
		Vel:       Vec{w.Rand.RFloat(-TearMaxDrift, TearMaxDrift), w.Rand.RFloat(-TearMaxUpKick, 0)},
		Size:      w.Rand.RFloat(TearMinSize, TearMaxSize),
		Lifespan:  w.TearLifespan,
		Life:      w.TearLifespan,
		ImgSet:    w.ActiveSet,
		ImgIdx:    imgIdx,
		HueOffset: float64(imgIdx) * HueDegreesPerImage,
	})
}

func (w *World) SpawnCollageItem(screenSize Pt) {
	Assert(w.NCollageImgs > 0)
	// The placement ranges use the screen size as it is right now, not as it
	// was when the program started. Resizing the window changes where future
	// items can land.
	sw := float64(screenSize.X)
	sh := float64(screenSize.Y)
	w.Collage = append(w.Collage, CollageItem{
		Pos: Vec{
			w.Rand.RFloat(CollagePlacementMargin*sw, (1-CollagePlacementMargin)*sw),
			w.Rand.RFloat(CollagePlacementMargin*sh, (1-CollagePlacementMargin)*sh),
		},
		Zoom:   w.Rand.RFloat(CollageMinZoom, CollageMaxZoom),
		ImgIdx: w.Rand.RInt(0, w.NCollageImgs-1),
	})
}

// StartCollage spawns the first item immediately and schedules one more every
// CollageSpawnPeriod frames. Starting an already running collage does
// nothing; in particular it must not create a second schedule.
func (w *World) StartCollage(screenSize Pt) {
	if w.CollageRunning {
		return
	}
	w.CollageRunning = true
	w.SpawnCollageItem(screenSize)
	w.NextCollageSpawn = w.FrameIdx + CollageSpawnPeriod
}

// StopCollage disables the spawn schedule and removes every item, whatever
// its opacity. There is no fade out.
func (w *World) StopCollage() {
	w.CollageRunning = false
	w.Collage = nil
}

func (w *World) ToggleImageSet() {
	w.ActiveSet = 1 - w.ActiveSet
}

// CurrentHue is the tint angle shared by all tears in one frame when the hue
// animation is on. It advances one degree per frame, counting from the moment
// the latest emission started, so the tint cycles fully every six seconds of
// crying. Each tear adds its own per-image offset on top of this.
func (w *World) CurrentHue() float64 {
	return math.Mod(float64(w.FrameIdx-w.EmissionStartFrame), 360)
}
