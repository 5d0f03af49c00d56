package gui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mkarev/trajlab/internal/config"
	"github.com/mkarev/trajlab/internal/physics"
	"github.com/mkarev/trajlab/internal/viz"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColGrid    = rl.NewColor(30, 30, 30, 255)    // Barely visible grid
	ColPath    = rl.NewColor(200, 200, 200, 255) // Flown path
	ColVector  = rl.NewColor(100, 100, 100, 255) // Velocity markers
)

const (
	winW = 1280
	winH = 720

	// Margin reserved for axes and labels, in pixels.
	scenePad = 70.0

	// Dash pattern for the flown path, in pixels.
	dashOn  = 8.0
	dashOff = 6.0

	// Actor texture footprint and velocity-vector scale.
	actorSize = 34.0
	vecScale  = 2.0
)

// Options wires the window to the rest of the app. Zero values are
// usable: default launch, no sprite, no sound.
type Options struct {
	Launch physics.Launch
	Sprite *viz.Sprite
	Cues   viz.Notifier
	Masked bool
}

// App is the native-window counterpart of the terminal simulator: the
// same solver, mapper, timeline and overlay, drawn with real lines and
// a rotated texture instead of braille cells.
type App struct {
	Launch   physics.Launch
	Sol      *physics.Solution
	Timeline *viz.Timeline
	Masked   bool

	InMenu   bool
	InConfig bool
	Flying   bool
	quit     bool

	Presets  []string
	Selected int

	Params   map[string]float64
	ParamSel int
	Keys     []string
	solveErr error

	ShowVectors bool
	Font        rl.Font

	// Smooth camera; input moves the targets, the camera lerps after.
	Zoom       float32
	ZoomTarget float32
	Pan        rl.Vector2
	PanTarget  rl.Vector2

	Sprite   *viz.Sprite
	Tex      rl.Texture2D
	texReady bool

	Cues   viz.Notifier
	landed bool
}

func initWindow() {
	rl.InitWindow(winW, winH, "trajlab")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont falls back to raylib's default font when the file is missing.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp creates and initializes an App configured for either the
// interactive preset menu or a direct flight of opts.Launch.
func NewApp(opts Options, interactive bool) *App {
	launch := opts.Launch
	if launch.Velocity == 0 {
		launch = *physics.NewLaunch()
	}

	presets := append([]string{"custom"}, config.ListPresets()...)

	app := &App{
		Launch:      launch,
		Masked:      opts.Masked,
		Presets:     presets,
		Params:      launch.GetParams(),
		Font:        loadFont(),
		InMenu:      interactive,
		ShowVectors: true,
		Sprite:      opts.Sprite,
		Cues:        opts.Cues,
		Zoom:        1,
		ZoomTarget:  1,
	}
	app.Keys = make([]string, 0, len(app.Params))
	for k := range app.Params {
		app.Keys = append(app.Keys, k)
	}
	sort.Strings(app.Keys)

	if !interactive {
		app.startFlight()
	}
	return app
}

// RunInteractive opens the window on the preset menu and blocks until
// the window is closed.
func RunInteractive(opts Options) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(opts, true)
	app.RunLoop()
}

// Run starts a non-interactive session that goes straight into a
// flight of opts.Launch. It blocks until the window is closed.
func Run(opts Options) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(opts, false)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) loadPreset(name string) {
	l := physics.NewLaunch()
	if p, ok := config.GetPreset(name); ok {
		l.Velocity, l.Angle = p.Velocity, p.Angle
		l.InitialHeight, l.FinalHeight = p.InitialHeight, p.FinalHeight
	}

	a.Launch = *l
	a.Params = l.GetParams()
	a.ParamSel = 0
	a.solveErr = nil
	a.InMenu = false
	a.InConfig = true
	a.Flying = false
}

// startFlight solves the configured launch and anchors the playback
// timeline. A solve error sends the app back to the config screen; an
// empty trajectory leaves the timeline unstarted and the scene blank.
func (a *App) startFlight() {
	for k, v := range a.Params {
		a.Launch.SetParam(k, v)
	}

	sol, err := a.Launch.Solve()
	if err != nil {
		a.solveErr = err
		a.InConfig = true
		a.Flying = false
		return
	}

	a.solveErr = nil
	a.Sol = sol
	a.Timeline = viz.NewTimeline(len(sol.Trajectory))
	a.landed = len(sol.Trajectory) == 0
	a.InMenu, a.InConfig, a.Flying = false, false, true
	a.resetCamera()

	if len(sol.Trajectory) > 0 {
		a.Timeline.Start(time.Now())
		if a.Cues != nil {
			a.Cues.Launch()
		}
	}
}

func (a *App) replay() {
	if a.Sol == nil || len(a.Sol.Trajectory) == 0 {
		return
	}
	a.Timeline.Start(time.Now())
	a.landed = false
	if a.Cues != nil {
		a.Cues.Launch()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}

	a.pollSprite()

	if a.InMenu {
		a.updateMenu()
		return
	}
	if a.InConfig {
		a.updateConfig()
		return
	}
	a.updateFlight()
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Selected++
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Selected--
	}

	// Wrap selection
	if a.Selected >= len(a.Presets) {
		a.Selected = 0
	}
	if a.Selected < 0 {
		a.Selected = len(a.Presets) - 1
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		a.loadPreset(a.Presets[a.Selected])
	}
}

func (a *App) updateConfig() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu = true
		a.InConfig = false
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		a.startFlight()
		return
	}

	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.ParamSel = (a.ParamSel + 1) % len(a.Keys)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.ParamSel--
		if a.ParamSel < 0 {
			a.ParamSel = len(a.Keys) - 1
		}
	}

	key := a.Keys[a.ParamSel]
	step := 1.0
	if rl.IsKeyDown(rl.KeyLeftShift) {
		step = 5.0
	}

	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		a.Params[key] += step
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		a.Params[key] -= step
	}
}

func (a *App) updateFlight() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu = true
		a.Flying = false
		return
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.replay()
	}
	if rl.IsKeyPressed(rl.KeyV) {
		a.ShowVectors = !a.ShowVectors
	}

	if !a.landed && a.Timeline.Done(time.Now()) {
		a.landed = true
		if a.Cues != nil {
			a.Cues.Impact()
		}
	}

	a.updateCamera()
}

func (a *App) resetCamera() {
	a.Zoom, a.ZoomTarget = 1, 1
	a.Pan, a.PanTarget = rl.NewVector2(0, 0), rl.NewVector2(0, 0)
}

func (a *App) updateCamera() {
	// Input modifies the TARGET, not the camera directly
	if rl.IsKeyDown(rl.KeyW) {
		a.PanTarget.Y += 4
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.PanTarget.Y -= 4
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.PanTarget.X += 4
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.PanTarget.X -= 4
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.PanTarget.X += delta.X
		a.PanTarget.Y += delta.Y
	}

	// Zoom
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.ZoomTarget += wheel * 0.1
		if a.ZoomTarget < 0.5 {
			a.ZoomTarget = 0.5
		}
		if a.ZoomTarget > 4 {
			a.ZoomTarget = 4
		}
	}

	// Apply Inertia (Lerp)
	lerp := 8 * rl.GetFrameTime()
	if lerp > 1 {
		lerp = 1
	}
	a.Zoom += (a.ZoomTarget - a.Zoom) * lerp
	a.Pan = rl.Vector2Lerp(a.Pan, a.PanTarget, lerp)
}

// camera scales about the window center so zoom keeps the scene framed.
func (a *App) camera() rl.Camera2D {
	center := rl.NewVector2(winW/2, winH/2)
	return rl.Camera2D{
		Offset:   rl.Vector2Add(center, a.Pan),
		Target:   center,
		Rotation: 0,
		Zoom:     a.Zoom,
	}
}

// pollSprite uploads the actor image to the GPU once the background
// load finishes. One attempt; a failed load keeps the vector fallback.
func (a *App) pollSprite() {
	if a.texReady || a.Sprite == nil {
		return
	}
	img := a.Sprite.Image()
	if img == nil {
		return
	}

	ri := rl.NewImageFromImage(img)
	a.Tex = rl.LoadTextureFromImage(ri)
	rl.UnloadImage(ri)
	rl.SetTextureFilter(a.Tex, rl.FilterBilinear)
	a.texReady = true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InMenu {
		a.drawMenu()
	} else if a.InConfig {
		a.drawConfig()
	} else {
		a.drawFlight()
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("trajlab", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %.1f m/s @ %.1f deg", a.Launch.Velocity, a.Launch.Angle), 140, 34, 16, ColText)

	a.drawSpeedStrip()

	status := "IN FLIGHT"
	col := ColSelect
	if a.landed {
		status = "LANDED"
		col = ColTextDim
	}
	a.drawText(status, 1130, 30, 16, col)

	if a.Sol != nil && len(a.Sol.Trajectory) == 0 {
		a.drawText("no flight: the launch never reaches the target height", 420, 350, 18, ColText)
	}

	a.drawText("[R] REPLAY  [V] VECTORS  [WHEEL] ZOOM  [ESC] MENU  [Q] QUIT", 690, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawMenu() {
	a.drawText("trajlab", 50, 50, 40, ColSelect)
	a.drawText("Select Launch", 50, 100, 16, ColTextDim)

	y := 160
	for i, name := range a.Presets {
		label := name
		if p, ok := config.GetPreset(name); ok {
			label = fmt.Sprintf("%-10s %4.0f m/s @ %4.0f deg", name, p.Velocity, p.Angle)
			if p.InitialHeight > 0 {
				label += fmt.Sprintf("  from %.0f m", p.InitialHeight)
			}
		}
		if i == a.Selected {
			a.drawText(fmt.Sprintf("> %s", label), 50, y, 20, ColSelect)
		} else {
			a.drawText(fmt.Sprintf("  %s", label), 50, y, 20, ColText)
		}
		y += 28
	}

	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 850, 680, 14, ColTextDim)
}

func (a *App) drawConfig() {
	a.drawText("trajlab", 50, 50, 40, ColTextDim)
	a.drawText("configure", 220, 65, 20, ColSelect)
	a.drawText(fmt.Sprintf("Preset: %s", a.Presets[a.Selected]), 50, 110, 16, ColAccent)

	y := 180
	for i, key := range a.Keys {
		val := a.Params[key]
		if i == a.ParamSel {
			a.drawText(fmt.Sprintf("> %-15s %.2f", key, val), 50, y, 20, ColSelect)
		} else {
			a.drawText(fmt.Sprintf("  %-15s %.2f", key, val), 50, y, 20, ColText)
		}
		y += 28
	}

	if a.solveErr != nil {
		a.drawText(a.solveErr.Error(), 50, y+30, 16, ColAccent)
	}

	a.drawText("ARROWS: ADJUST  ENTER: LAUNCH  ESC: BACK", 860, 680, 14, ColTextDim)
}
