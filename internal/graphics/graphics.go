package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the drawing surface. Zero Width or Height opens fullscreen at the monitor's size.
type Window struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int
	MSAA      bool
}

// Hooks are the caller's parts of the loop. Nil hooks are skipped.
type Hooks struct {
	// Setup runs once with the surface size after the GL context exists; the size is never read again.
	Setup    func(width, height int)
	Update   func()
	Draw     func()
	// Teardown runs after the last frame, while the GL context still exists.
	Teardown func()
}

// Run opens the window and drives the frame loop until the window is closed.
// Each frame calls Update (input, animation), clears to black, then calls Draw.
// ESC is left to the caller (the console uses it); close via the window button.
func Run(win Window, h Hooks) {
	var flags uint32
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	width, height := win.Width, win.Height
	if width <= 0 || height <= 0 {
		flags |= rl.FlagFullscreenMode
		width, height = 0, 0
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(width), int32(height), win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if win.TargetFPS > 0 {
		rl.SetTargetFPS(int32(win.TargetFPS))
	}
	if h.Setup != nil {
		h.Setup(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if h.Teardown != nil {
		defer h.Teardown()
	}

	for !rl.WindowShouldClose() {
		if h.Update != nil {
			h.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if h.Draw != nil {
			h.Draw()
		}
		rl.EndDrawing()
	}
}

// Mouse reads the window's pointer state; it satisfies input.Source.
type Mouse struct{}

func (Mouse) MousePosition() (float32, float32) {
	pos := rl.GetMousePosition()
	return pos.X, pos.Y
}

func (Mouse) LeftPressed() bool  { return rl.IsMouseButtonPressed(rl.MouseButtonLeft) }
func (Mouse) LeftReleased() bool { return rl.IsMouseButtonReleased(rl.MouseButtonLeft) }
func (Mouse) WheelMove() float32 { return rl.GetMouseWheelMove() }

// LoadFont loads a TTF/OTF at a size suited to the overlays. ok is false if the file could not be used.
func LoadFont(path string) (font rl.Font, ok bool) {
	font = rl.LoadFontEx(path, 32, nil)
	if !rl.IsFontValid(font) {
		return rl.GetFontDefault(), false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}
