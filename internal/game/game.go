package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Garsondee/Hoop-Sense/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Game is the ebiten front-end: input, camera presets and drawing on top of
// a Simulation driven by the wall clock.
type Game struct {
	width  int
	height int
	viewW  int // 3D viewport width; the event feed takes the rest

	cfg   config.Config
	sim   *Simulation
	scene *Scene

	camera   int // index into cameraPresets
	showHelp bool
	prevKeys map[ebiten.Key]bool

	hudFace *text.GoXFace
}

// New builds the game from cfg.
func New(cfg config.Config) *Game {
	scene := NewScene()
	g := &Game{
		width:    cfg.WindowWidth,
		height:   cfg.WindowHeight,
		viewW:    cfg.WindowWidth - feedPanelWidth,
		cfg:      cfg,
		scene:    scene,
		sim:      NewSimulation(TuningFromConfig(cfg), SystemClock(), scene),
		showHelp: true,
		prevKeys: make(map[ebiten.Key]bool),
		hudFace:  text.NewGoXFace(basicfont.Face7x13),
	}
	if g.viewW < 200 {
		g.viewW = g.width
	}
	return g
}

// Simulation exposes the running simulation.
func (g *Game) Simulation() *Simulation { return g.sim }

func (g *Game) Update() error {
	g.handleInput()
	g.sim.Frame()
	return nil
}

// handleInput processes keypresses (edge-triggered except Space release).
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	if pressed(ebiten.KeyEnter) {
		g.sim.StartRound()
	}
	if pressed(ebiten.KeyE) {
		g.sim.SpawnBall()
	}

	// Space: down starts the charge, up fires.
	if pressed(ebiten.KeySpace) {
		g.sim.BeginCharge()
	} else if !currentKeys[ebiten.KeySpace] && g.prevKeys[ebiten.KeySpace] {
		g.sim.ReleaseCharge()
	}

	camKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, k := range camKeys {
		if pressed(k) && i < len(cameraPresets) {
			g.camera = i
		}
	}

	if pressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if pressed(ebiten.KeyV) {
		g.sim.SetSensorVisible(!g.sim.SensorVisible())
	}
	if pressed(ebiten.KeyC) {
		g.copyLeaderboard()
	}

	g.prevKeys = currentKeys
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 26, A: 255})

	view := screen.SubImage(image.Rect(0, 0, g.viewW, g.height)).(*ebiten.Image)
	g.scene.Draw(view, cameraPresets[g.camera])

	if g.viewW < g.width {
		g.sim.Feed.Draw(screen, g.viewW, g.height)
	}

	g.drawHUD(screen)
	if g.sim.Round.OverlayVisible() {
		g.drawFinalOverlay(screen)
	}
	if g.showHelp {
		g.drawHelp(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// copyLeaderboard puts the leaderboard on the system clipboard and reports
// the outcome in the event feed.
func (g *Game) copyLeaderboard() {
	if err := writeClipboard(g.sim.LeaderboardText()); err != nil {
		g.sim.events.announce("--", FeedWarn, fmt.Sprintf("clipboard: %v", err))
		g.sim.events.record("--", catUI, "clipboard_failed", err.Error(), 0)
		return
	}
	g.sim.events.announce("--", FeedInfo, "leaderboard copied")
	g.sim.events.record("--", catUI, "clipboard", "leaderboard copied", float64(g.sim.State.Round.Leaderboard.Len()))
}
