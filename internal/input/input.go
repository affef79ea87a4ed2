package input

// WheelDeltaPerNotch converts one raylib wheel notch into a browser-style deltaY (pixels).
// raylib reports +1 for a notch away from the user; browsers report deltaY < 0 for the same motion.
const WheelDeltaPerNotch = 100

// Source is the per-frame pointer state the poller reads.
type Source interface {
	MousePosition() (x, y float32)
	LeftPressed() bool
	LeftReleased() bool
	WheelMove() float32
}

// Handler receives pointer events in the order they are detected within a frame.
type Handler interface {
	PointerDown(x, y float32)
	PointerMove(x, y float32)
	PointerUp()
	Wheel(deltaY float32)
}

// Poller turns polled state into events: down on press, move when the position changed,
// up on release, wheel when the wheel moved.
type Poller struct {
	src     Source
	lastX   float32
	lastY   float32
	started bool
}

// NewPoller returns a poller reading from src.
func NewPoller(src Source) *Poller {
	return &Poller{src: src}
}

// Update polls src once and forwards what happened to h. Call once per frame.
func (p *Poller) Update(h Handler) {
	x, y := p.src.MousePosition()
	if p.src.LeftPressed() {
		h.PointerDown(x, y)
	} else if p.started && (x != p.lastX || y != p.lastY) {
		h.PointerMove(x, y)
	}
	if p.src.LeftReleased() {
		h.PointerUp()
	}
	if w := p.src.WheelMove(); w != 0 {
		h.Wheel(-w * WheelDeltaPerNotch)
	}
	p.lastX, p.lastY = x, y
	p.started = true
}
