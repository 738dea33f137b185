package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate points HOME at an empty directory so a real user config is never read.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := decode(defaultReflexYAML)
	if err != nil {
		t.Fatalf("decode(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "custom.yaml", `
round:
  countdown: 1.5
keys:
  left: ["z"]
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Round.Countdown != 1.5 {
		t.Errorf("Countdown = %v, expected 1.5", cfg.Round.Countdown)
	}
	if !reflect.DeepEqual(cfg.Keys.Left, []string{"z"}) {
		t.Errorf("Keys.Left = %v, expected [z]", cfg.Keys.Left)
	}
	// Untouched fields keep their defaults
	if cfg.Display.BrightnessBias != 0.125 {
		t.Errorf("BrightnessBias = %v, expected default 0.125", cfg.Display.BrightnessBias)
	}
	if !reflect.DeepEqual(cfg.Keys.Right, Default().Keys.Right) {
		t.Errorf("Keys.Right = %v, expected defaults", cfg.Keys.Right)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)

	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing custom path should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected it to wrap os.ErrNotExist", err)
	}
}

func TestLoadCustomPathUnknownField(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "typo.yaml", "round:\n  countdwn: 1.2\n")

	if _, _, err := Load(path); err == nil {
		t.Error("Load() should reject unknown fields")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeFile(t, home, filepath.Join(".reflex", "reflex.yaml"), "round:\n  countdown: 1.25\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Round.Countdown != 1.25 {
		t.Errorf("Countdown = %v, expected 1.25", cfg.Round.Countdown)
	}
}

func TestLoadBrokenUserConfigFallsThrough(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, filepath.Join(".reflex", "reflex.yaml"), "round: [not, a, map\n")

	_, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(empty) = %+v, expected defaults", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("REFLEX_COUNTDOWN", "1.4")
	t.Setenv("REFLEX_BRIGHTNESS_BIAS", "0.25")
	t.Setenv("REFLEX_SHOW_HELP", "false")

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Round.Countdown != 1.4 {
		t.Errorf("Countdown = %v, expected 1.4", cfg.Round.Countdown)
	}
	if cfg.Display.BrightnessBias != 0.25 {
		t.Errorf("BrightnessBias = %v, expected 0.25", cfg.Display.BrightnessBias)
	}
	if cfg.Display.ShowHelp {
		t.Error("ShowHelp should be overridden to false")
	}
	if !cfg.Display.ShowTally {
		t.Error("ShowTally should keep its default")
	}
}

func TestLoadEnvOverrideInvalid(t *testing.T) {
	isolate(t)

	t.Setenv("REFLEX_COUNTDOWN", "soon")
	if _, _, err := Load(""); err == nil {
		t.Error("Load() should fail on an unparsable env value")
	}

	t.Setenv("REFLEX_COUNTDOWN", "3")
	_, _, err := Load("")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid for an out-of-range countdown", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Default().Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	cfg, err := decode(data)
	if err != nil {
		t.Fatalf("decode(Encode()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("decoded = %+v, expected defaults", cfg)
	}
}
