package game

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Cyber-Pursuit/internal/pursuit"
)

type gameScreen int

const (
	screenWelcome gameScreen = iota
	screenPlaying
	screenGameOver
)

// trackedKeys are the keys the Game edge-detects each frame.
var trackedKeys = []ebiten.Key{
	ebiten.KeyEnter,
	ebiten.KeyR,
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
}

// Game is the Ebiten front end wrapped around a World.
type Game struct {
	world  *World
	mapGen *MapGenerator
	screen gameScreen

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	// Tick at which a debug report was last copied, for the HUD flash.
	reportCopiedAt int
}

// New builds the windowed game. Remote map generation activates when the
// PURSUIT_MAP_API_KEY environment variable is set.
func New() *Game {
	mg := NewMapGenerator(os.Getenv("PURSUIT_MAP_API_KEY"))
	g := &Game{
		mapGen:         mg,
		screen:         screenWelcome,
		prevKeys:       make(map[ebiten.Key]bool),
		reportCopiedAt: -1,
	}
	g.newEpisode()
	return g
}

func (g *Game) newEpisode() {
	g.world = NewWorld(
		WithSeed(time.Now().UnixNano()),
		WithMapGenerator(g.mapGen, mapRefreshTicks),
		WithMode(currentMode(g.world)),
	)
	g.reportCopiedAt = -1
}

func currentMode(w *World) pursuit.Mode {
	if w == nil {
		return pursuit.ModeHybrid
	}
	return w.Mode
}

func (g *Game) Update() error {
	defer g.rememberInput()

	switch g.screen {
	case screenWelcome:
		if g.keyJustPressed(ebiten.KeyEnter) || g.mouseJustClicked() {
			g.screen = screenPlaying
		}
	case screenPlaying:
		g.handleModeKeys()
		if g.keyJustPressed(ebiten.KeyR) {
			g.copyDebugReport()
		}
		g.world.Step(g.readInput())
		if g.world.Over {
			g.screen = screenGameOver
		}
	case screenGameOver:
		if g.keyJustPressed(ebiten.KeyEnter) || g.mouseJustClicked() {
			g.newEpisode()
			g.screen = screenPlaying
		}
	}
	return nil
}

// readInput translates the keyboard and mouse state into one tick of intent.
func (g *Game) readInput() PlayerInput {
	var in PlayerInput
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.DX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.DX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.DY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.DY++
	}
	in.Boost = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.Fire = true
		in.FireX = float64(mx)
		in.FireY = float64(my)
	} else if ebiten.IsKeyPressed(ebiten.KeySpace) {
		if e := g.world.NearestEnemy(); e != nil {
			in.Fire = true
			in.FireX = e.X
			in.FireY = e.Y
		}
	}
	return in
}

func (g *Game) handleModeKeys() {
	switch {
	case g.keyJustPressed(ebiten.KeyDigit1):
		g.world.Mode = pursuit.ModeHybrid
	case g.keyJustPressed(ebiten.KeyDigit2):
		g.world.Mode = pursuit.ModePredictive
	case g.keyJustPressed(ebiten.KeyDigit3):
		g.world.Mode = pursuit.ModePotentialField
	case g.keyJustPressed(ebiten.KeyDigit4):
		g.world.Mode = pursuit.ModeGenetic
	}
}

func (g *Game) keyJustPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k) && !g.prevKeys[k]
}

func (g *Game) mouseJustClicked() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !g.prevMouseLeft
}

func (g *Game) rememberInput() {
	for _, k := range trackedKeys {
		g.prevKeys[k] = ebiten.IsKeyPressed(k)
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	switch g.screen {
	case screenWelcome:
		g.drawWelcome(screen)
	case screenPlaying:
		g.drawHUD(screen)
	case screenGameOver:
		g.drawHUD(screen)
		g.drawGameOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width, g.world.Height
}
