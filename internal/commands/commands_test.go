package commands

import (
	"errors"
	"flag"
	"testing"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		line string
		args []string
		ok   bool
	}{
		{line: "cmd zoom -distance 9", args: []string{"zoom", "-distance", "9"}, ok: true},
		{line: "cmd   reset  ", args: []string{"reset"}, ok: true},
		{line: "cmd ", args: nil, ok: true},
		{line: "spin faster", args: nil, ok: false},
		{line: "CMD reset", args: nil, ok: false},
	}
	for _, tc := range tcs {
		args, ok := Parse(tc.line)
		if ok != tc.ok || len(args) != len(tc.args) {
			t.Fatalf("Parse(%q) = %v, %v; want %v, %v", tc.line, args, ok, tc.args, tc.ok)
		}
		for i := range args {
			if args[i] != tc.args[i] {
				t.Fatalf("Parse(%q)[%d] = %q; want %q", tc.line, i, args[i], tc.args[i])
			}
		}
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var distance float64
	fs := flag.NewFlagSet("zoom", flag.ContinueOnError)
	d := fs.Float64("distance", 7, "camera distance")
	r.Register("zoom", "set camera distance", fs, func() error {
		distance = *d
		return nil
	})
	resets := 0
	r.Register("reset", "reset view", nil, func() error {
		resets++
		return nil
	})

	if err := r.Execute([]string{"zoom", "-distance", "12.5"}); err != nil {
		t.Fatalf("zoom: %v", err)
	}
	if distance != 12.5 {
		t.Fatalf("distance = %v; want 12.5", distance)
	}
	if err := r.Execute([]string{"reset"}); err != nil || resets != 1 {
		t.Fatalf("reset: err=%v resets=%d", err, resets)
	}
	if err := r.Execute(nil); !errors.Is(err, ErrMissing) {
		t.Fatalf("empty: err=%v; want ErrMissing", err)
	}
	if err := r.Execute([]string{"warp"}); err == nil {
		t.Fatalf("unknown command: want error")
	}
	if err := r.Execute([]string{"zoom", "-distance", "far"}); err == nil {
		t.Fatalf("bad flag value: want error")
	}
}

func TestHelp(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("fps", flag.ContinueOnError)
	fs.Bool("show", true, "")
	r.Register("fps", "toggle FPS counter", fs, func() error { return nil })
	r.Register("help", "", nil, func() error { return nil })

	got := r.Help()
	want := []string{"fps -show: toggle FPS counter", "help"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Help = %q; want %q", got, want)
	}
}

func TestExecuteResetsFlags(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("fps", flag.ContinueOnError)
	show := fs.Bool("show", true, "")
	var got []bool
	r.Register("fps", "", fs, func() error {
		got = append(got, *show)
		return nil
	})
	for _, args := range [][]string{{"fps", "-show=false"}, {"fps"}} {
		if err := r.Execute(args); err != nil {
			t.Fatalf("Execute(%v): %v", args, err)
		}
	}
	if len(got) != 2 || got[0] || !got[1] {
		t.Fatalf("show values = %v; want [false true]", got)
	}
}
