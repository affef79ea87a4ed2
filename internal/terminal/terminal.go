package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"globe/internal/commands"
	"globe/internal/logger"
)

const (
	BarHeight = 40
	// WindowedBarOffset lifts the bar when windowed so the taskbar doesn't cover it.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	maxLinesOnScreen  = 14
	lineHeight        = fontSize + 4
	maxLineLen        = 200
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	borderColor = rl.NewColor(80, 80, 80, 255)
	historyBg   = rl.NewColor(24, 24, 24, 200)
)

// Terminal is the console bar at the bottom of the window, toggled with ESC.
// Lines starting with "cmd " run through the registry; anything else is logged with a hint.
// The mouse keeps driving the globe while the console is open; only the keyboard is captured.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
}

// New returns a closed terminal that logs to log and runs commands from reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and reading the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font for the bar and history. A zero texture ID keeps raylib's default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles ESC, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		t.Submit(t.inputBuf)
		t.inputBuf = ""
	}
}

// Submit logs line and runs it if it is a command. Errors are logged, not returned.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`commands start with "cmd "; try "cmd help"`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the console history and input bar when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), historyBg)
	}
	lines := t.log.Lines()
	start := max(0, len(lines)-maxLinesOnScreen)
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.text(line, padding, chatY+(i-start)*lineHeight+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, borderColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, c)
}
