package input

import (
	"fmt"
	"testing"

	"globe/internal/orbit"
)

type frame struct {
	x, y              float32
	pressed, released bool
	wheel             float32
}

type fakeSource struct {
	frames []frame
	i      int
}

func (f *fakeSource) cur() frame                        { return f.frames[f.i] }
func (f *fakeSource) MousePosition() (float32, float32) { return f.cur().x, f.cur().y }
func (f *fakeSource) LeftPressed() bool                 { return f.cur().pressed }
func (f *fakeSource) LeftReleased() bool                { return f.cur().released }
func (f *fakeSource) WheelMove() float32                { return f.cur().wheel }

type recorder struct{ events []string }

func (r *recorder) PointerDown(x, y float32) { r.events = append(r.events, fmt.Sprintf("down %v,%v", x, y)) }
func (r *recorder) PointerMove(x, y float32) { r.events = append(r.events, fmt.Sprintf("move %v,%v", x, y)) }
func (r *recorder) PointerUp()               { r.events = append(r.events, "up") }
func (r *recorder) Wheel(d float32)          { r.events = append(r.events, fmt.Sprintf("wheel %v", d)) }

func run(frames []frame, h Handler) {
	src := &fakeSource{frames: frames}
	p := NewPoller(src)
	for i := range frames {
		src.i = i
		p.Update(h)
	}
}

func TestPollerEvents(t *testing.T) {
	frames := []frame{
		{x: 5, y: 5},
		{x: 100, y: 100, pressed: true},
		{x: 100, y: 100},
		{x: 110, y: 115},
		{x: 110, y: 115, released: true},
		{x: 110, y: 115, wheel: -1},
		{x: 120, y: 115, wheel: 2},
	}
	want := []string{
		"down 100,100",
		"move 110,115",
		"up",
		"wheel 100",
		"move 120,115",
		"wheel -200",
	}
	r := &recorder{}
	run(frames, r)
	if len(r.events) != len(want) {
		t.Fatalf("events = %v; want %v", r.events, want)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Fatalf("events[%d] = %q; want %q", i, r.events[i], want[i])
		}
	}
}

func TestPollerDrivesController(t *testing.T) {
	c := orbit.New(orbit.DefaultDistance)
	run([]frame{
		{x: 100, y: 100, pressed: true},
		{x: 110, y: 115},
		{x: 110, y: 115, released: true},
		{x: 400, y: 10},
	}, c)

	want := orbit.DragRotation(10, 15)
	if got := c.Orientation(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("orientation = %v; want %v", got, want)
	}
}

func TestWheelNotchZoomsOut(t *testing.T) {
	c := orbit.New(orbit.DefaultDistance)
	run([]frame{{wheel: -1}}, c)
	if got, want := c.Distance(), orbit.DefaultDistance+1; got < want-1e-5 || got > want+1e-5 {
		t.Fatalf("distance = %v; want %v", got, want)
	}
}
