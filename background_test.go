package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewBackgroundRejectsUnknownMode(t *testing.T) {
	if _, err := NewBackground("spiral", 800, 600, false); err == nil {
		t.Fatal("want error for unknown mode")
	}
}

func TestResizeRebuildsParticles(t *testing.T) {
	b := newTestBackground(t, ModeNetwork, 1200, 800)
	if len(b.particles) != 80 {
		t.Fatalf("%d particles at width 1200, want 80", len(b.particles))
	}
	old := b.particles[0]

	b.Layout(500, 600)
	b.step()

	if len(b.particles) != 40 {
		t.Fatalf("%d particles after resize to width 500, want 40", len(b.particles))
	}
	if b.particles[0] == old {
		t.Fatal("resize must rebuild particles, not carry them over")
	}
}

func TestLayoutZeroHeightKeepsLastGood(t *testing.T) {
	b := newTestBackground(t, ModeNetwork, 1200, 800)
	w, h := b.Layout(1200, 0)
	if w != 1200 || h != 800 {
		t.Fatalf("Layout(1200, 0) = %d x %d, want 1200 x 800", w, h)
	}
}

func TestModeSwitchRebuildsState(t *testing.T) {
	b := newTestBackground(t, ModeNetwork, 1200, 800)

	b.setMode(ModeWaves)
	if b.particles != nil {
		t.Fatal("particles must be dropped when switching to waves")
	}
	if len(b.waves) != len(wavePalette(false)) {
		t.Fatalf("%d waves after switch, want %d", len(b.waves), len(wavePalette(false)))
	}

	first := b.waves[0]
	b.setMode(ModeWaves)
	if b.waves[0] != first {
		t.Fatal("switching to the current mode must not rebuild")
	}

	b.setMode(ModeDots)
	if b.waves != nil {
		t.Fatal("waves must be dropped when switching to dots")
	}
	if len(b.particles) != 160 {
		t.Fatalf("%d particles after switch to dots, want 160", len(b.particles))
	}
}

func TestCloseStopsUpdates(t *testing.T) {
	b := newTestBackground(t, ModeNetwork, 800, 600)
	b.Close()
	before := *b.particles[0]

	if err := b.Update(); err != nil {
		t.Fatal(err)
	}

	if *b.particles[0] != before {
		t.Fatal("update after close must not mutate state")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "background.json")

	b := newTestBackground(t, ModeDots, 800, 600)
	b.Dark = true
	if err := b.saveSettings(path); err != nil {
		t.Fatal(err)
	}

	b2 := newTestBackground(t, ModeNetwork, 800, 600)
	if err := b2.loadSettings(path); err != nil {
		t.Fatal(err)
	}
	if b2.Mode != ModeDots || !b2.Dark {
		t.Fatalf("loaded mode=%s dark=%v, want dots/true", b2.Mode, b2.Dark)
	}
	if len(b2.particles) != 160 {
		t.Fatalf("load must rebuild for the loaded mode, got %d particles", len(b2.particles))
	}
}

func TestLoadSettingsRejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "background.json")
	if err := os.WriteFile(path, []byte(`{"mode":"spiral"}`), 0644); err != nil {
		t.Fatal(err)
	}
	b := newTestBackground(t, ModeNetwork, 800, 600)
	if err := b.loadSettings(path); err == nil {
		t.Fatal("want error for unknown mode in settings file")
	}
}

func TestAttractPointerStaysOnSurface(t *testing.T) {
	d := newAttractDriver(1)
	for i := 0; i < 5000; i++ {
		x, y := d.next(800, 600)
		if x < 0 || x > 800 || y < 0 || y > 600 {
			t.Fatalf("step %d: attract pointer at (%v, %v) left the surface", i, x, y)
		}
	}
}
