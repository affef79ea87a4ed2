package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: overlay text is rebuilt every N frames to keep allocations down.
	updateInterval = 30
)

// Debug draws optional overlays in the top-right corner: FPS, heap, and the globe's view state.
// All overlays start hidden.
type Debug struct {
	ShowFPS         bool
	ShowMemAlloc    bool
	ShowOrientation bool
	font            rl.Font
	frameCount      uint32
	fpsText         string
	memText         string
	viewText        string
	memStats        runtime.MemStats

	rotation mgl32.Quat
	spin     float32
	distance float32
}

// New returns a Debug with every overlay hidden.
func New() *Debug {
	return &Debug{rotation: mgl32.QuatIdent()}
}

// SetFont sets the overlay font. A zero texture ID keeps raylib's default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetView records the globe state shown by the orientation overlay.
func (d *Debug) SetView(orientation mgl32.Quat, spin, distance float32) {
	d.rotation, d.spin, d.distance = orientation, spin, distance
}

// ViewText formats the orientation overlay line.
func ViewText(q mgl32.Quat, spin, distance float32) string {
	return fmt.Sprintf("q=(%.3f, %.3f, %.3f, %.3f) spin=%.4f z=%.2f", q.W, q.V[0], q.V[1], q.V[2], spin, distance)
}

// Draw renders the enabled overlays. Call last in the frame so they sit on top.
func (d *Debug) Draw() {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.fpsText == "") ||
		(d.ShowMemAlloc && d.memText == "") ||
		(d.ShowOrientation && d.viewText == "")

	y := int32(padding)
	if d.ShowFPS {
		if refresh {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.line(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.line(d.memText, y)
		y += lineHeight
	}
	if d.ShowOrientation {
		if refresh {
			d.viewText = ViewText(d.rotation, d.spin, d.distance)
		}
		d.line(d.viewText, y)
	}
}

// line draws text right-aligned at y.
func (d *Debug) line(text string, y int32) {
	if text == "" {
		return
	}
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, float32(y)), fontSize, 1, rl.Green)
		return
	}
	w := float32(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(screenW-w-padding), y, fontSize, rl.Green)
}
