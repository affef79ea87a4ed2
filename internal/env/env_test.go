package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseLine(t *testing.T) {
	tcs := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{line: "GLOBE_ASSET_DIR=/srv/maps", key: "GLOBE_ASSET_DIR", value: "/srv/maps", ok: true},
		{line: `  NAME = "quoted value" `, key: "NAME", value: "quoted value", ok: true},
		{line: "export A='b'", key: "A", value: "b", ok: true},
		{line: "# comment", ok: false},
		{line: "", ok: false},
		{line: "=nokey", ok: false},
		{line: "novalue", ok: false},
	}
	for _, tc := range tcs {
		key, value, ok := parseLine(tc.line)
		if ok != tc.ok || key != tc.key || value != tc.value {
			t.Fatalf("parseLine(%q) = %q, %q, %v; want %q, %q, %v", tc.line, key, value, ok, tc.key, tc.value, tc.ok)
		}
	}
}

func TestLoadDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GLOBE_TEST_SET=file\nGLOBE_TEST_NEW=file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GLOBE_TEST_SET", "shell")
	t.Setenv("GLOBE_TEST_NEW", "")
	os.Unsetenv("GLOBE_TEST_NEW")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("GLOBE_TEST_SET"); got != "shell" {
		t.Fatalf("GLOBE_TEST_SET = %q; want shell", got)
	}
	if got := Get("GLOBE_TEST_NEW", "x"); got != "file" {
		t.Fatalf("GLOBE_TEST_NEW = %q; want file", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if got := Get("GLOBE_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q; want fallback", got)
	}
}
