package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Simulation constants
const (
	influenceRadius  = 150.0
	mobileBreakpoint = 768.0

	networkCount = 80
	dotsCount    = 160
	networkSpeed = 0.7
	dotsSpeed    = 0.4

	connectionDivisor = 8.0
	repelDivisor      = 20.0

	magnifyCap     = 3.0
	magnifyDivisor = 10.0
	growStep       = 0.2
	decayStep      = 0.1

	clockStep    = 0.01
	waveBaseline = 150.0

	settingsFile = "background.json"
)

// Mode selects which simulation initializes and runs.
type Mode string

const (
	ModeNetwork Mode = "network"
	ModeDots    Mode = "dots"
	ModeWaves   Mode = "waves"
)

func (m Mode) valid() bool {
	switch m {
	case ModeNetwork, ModeDots, ModeWaves:
		return true
	}
	return false
}

// pointerState is the last observed pointer position in surface coordinates.
// Present stays false until the first pointer movement is seen.
type pointerState struct {
	X, Y    float64
	Present bool
}

// Background struct: the animated background component. It owns its surface
// dimensions, the pointer state, and whichever entity set the active mode
// uses; it implements ebiten.Game.
type Background struct {
	Mode Mode
	Dark bool

	width, height      float64
	pendingW, pendingH int

	pointer        pointerState
	prevMX, prevMY int
	primed         bool
	realPointer    bool

	particles []*Particle
	waves     []*Wave
	clock     float64

	attract *attractDriver

	paused bool
	closed bool
	debug  bool

	rng *rand.Rand
}

// NewBackground creates a background of the given mode sized to width x height.
func NewBackground(mode Mode, width, height int, dark bool) (*Background, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	b := &Background{
		Mode:     mode,
		Dark:     dark,
		pendingW: width,
		pendingH: height,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	b.resize(float64(width), float64(height))
	return b, nil
}

// Close stops the background: later updates and draws mutate nothing.
func (b *Background) Close() {
	b.closed = true
}

// Update is called each tick by Ebitengine.
func (b *Background) Update() error {
	if b.closed {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	b.handleInput()
	b.trackPointer()
	if b.paused {
		return nil
	}
	b.step()
	return nil
}

// step advances the active simulation by one frame. Kept free of any input or
// drawing so it can run headless.
func (b *Background) step() {
	b.applyPendingResize()
	switch b.Mode {
	case ModeWaves:
		b.stepWaves()
	default:
		b.stepParticles()
	}
}

// Draw is called each frame by Ebitengine.
func (b *Background) Draw(screen *ebiten.Image) {
	if b.closed || screen == nil {
		return
	}
	screen.Fill(backgroundColor(b.Dark))
	switch b.Mode {
	case ModeWaves:
		b.drawWaves(screen)
	default:
		b.drawParticles(screen)
		if b.Mode == ModeNetwork {
			// Connections read positions already advanced this frame.
			b.drawConnections(screen)
		}
	}
	if b.debug {
		status := fmt.Sprintf("%s | %.0f fps | 1/2/3: mode  d: theme  space: pause  s/l: settings", b.Mode, ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout records the outside size; the resize itself is applied at the top of
// the next update so all entity mutation stays on the update path. A zero or
// negative reported height keeps the last known good height.
func (b *Background) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 {
		b.pendingW = outsideWidth
	}
	if outsideHeight > 0 {
		b.pendingH = outsideHeight
	}
	return b.pendingW, b.pendingH
}

func (b *Background) applyPendingResize() {
	if b.pendingW == int(b.width) && b.pendingH == int(b.height) {
		return
	}
	b.resize(float64(b.pendingW), float64(b.pendingH))
}

// resize sets the surface dimensions and rebuilds the active mode's entities.
// No entity survives a resize.
func (b *Background) resize(w, h float64) {
	b.width, b.height = w, h
	b.reinit()
}

// reinit rebuilds the entity set for the active mode from scratch.
func (b *Background) reinit() {
	switch b.Mode {
	case ModeWaves:
		b.particles = nil
		b.initWaves()
	default:
		b.waves = nil
		b.initParticles()
	}
}

// setMode switches the active mode and rebuilds state. A no-op when the mode
// is unchanged.
func (b *Background) setMode(m Mode) {
	if m == b.Mode || !m.valid() {
		return
	}
	b.Mode = m
	b.reinit()
}

// handleInput processes hotkeys.
func (b *Background) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		b.setMode(ModeNetwork)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		b.setMode(ModeDots)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		b.setMode(ModeWaves)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		b.Dark = !b.Dark
		b.reinit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		b.paused = !b.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = b.saveSettings(settingsFile)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		_ = b.loadSettings(settingsFile)
	}
}

// trackPointer samples the cursor and marks the pointer present once it has
// actually moved. Until then the attract driver, when configured, wanders a
// synthetic pointer across the surface instead.
func (b *Background) trackPointer() {
	mx, my := ebiten.CursorPosition()
	if b.primed && (mx != b.prevMX || my != b.prevMY) {
		b.realPointer = true
		b.pointer = pointerState{X: float64(mx), Y: float64(my), Present: true}
	}
	b.prevMX, b.prevMY = mx, my
	b.primed = true

	if !b.realPointer && b.attract != nil {
		x, y := b.attract.next(b.width, b.height)
		b.pointer = pointerState{X: x, Y: y, Present: true}
	}
}

// settings is the on-disk shape of the savable runtime state.
type settings struct {
	Mode Mode `json:"mode"`
	Dark bool `json:"dark"`
}

// saveSettings saves the current mode and theme to JSON.
func (b *Background) saveSettings(filename string) error {
	data, err := json.Marshal(settings{Mode: b.Mode, Dark: b.Dark})
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// loadSettings loads mode and theme from JSON and rebuilds state.
func (b *Background) loadSettings(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var s settings
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !s.Mode.valid() {
		return fmt.Errorf("unknown mode %q", s.Mode)
	}
	b.Mode = s.Mode
	b.Dark = s.Dark
	b.reinit()
	return nil
}
