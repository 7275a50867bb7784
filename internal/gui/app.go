//go:build cgo

package gui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/appengine-ltd/word-lantern/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Seed      int64
	WordsFile string
	Columns   int
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

var (
	colorBG     = rl.NewColor(4, 6, 10, 255)
	colorText   = rl.NewColor(175, 245, 195, 255)
	colorDim    = rl.NewColor(108, 165, 124, 255)
	colorAccent = rl.NewColor(60, 255, 145, 255)
	colorHold   = rl.NewColor(255, 198, 96, 255)
)

type gameUI struct {
	cfg     AppConfig
	gameCfg game.Config

	width  int32
	height int32

	session *game.Session

	lastTick time.Time
	quit     bool
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	gameCfg := game.DefaultConfig()
	if cfg.Columns > 0 {
		gameCfg.Columns = cfg.Columns
	}

	words := game.BuiltinWords()
	path := cfg.WordsFile
	if path == "" {
		path = defaultWordListFile
	}
	extra, err := loadWordList(path)
	if err != nil {
		return nil, fmt.Errorf("load word list %s: %w", path, err)
	}
	words = append(words, extra...)

	dict := game.NewDictionary(words)
	if len(dict.Words()) == 0 {
		return nil, fmt.Errorf("word list is empty after filtering to a-z")
	}

	ui := &gameUI{
		cfg:      cfg,
		gameCfg:  gameCfg,
		width:    1366,
		height:   768,
		lastTick: time.Now(),
	}

	session, err := game.NewSession(gameCfg, dict, cfg.Seed, float64(ui.width), float64(ui.height))
	if err != nil {
		return nil, err
	}
	ui.session = session
	return ui, nil
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "word-lantern")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	initTypography(ui.gameCfg.FontFamily)

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		w := int32(rl.GetScreenWidth())
		h := int32(rl.GetScreenHeight())
		if w != ui.width || h != ui.height {
			ui.width = w
			ui.height = h
			ui.session.Resize(float64(w), float64(h))
		}

		if rl.IsKeyPressed(rl.KeyEscape) {
			ui.quit = true
		}

		mouse := rl.GetMousePosition()
		ptr := game.PointerSample{
			X:    float64(mouse.X),
			Y:    float64(mouse.Y),
			Down: rl.IsMouseButtonDown(rl.MouseButtonLeft),
		}
		ui.session.Tick(delta.Seconds(), ptr)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw(float64(mouse.X), float64(mouse.Y))
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) draw(px, py float64) {
	cfg := ui.gameCfg
	grid := ui.session.Grid()
	held, progress := ui.session.Held()

	heldCells := make(map[int]bool)
	if held != nil {
		for _, idx := range held.Cells {
			heldCells[idx] = true
		}
	}

	fontSize := float32(cfg.FontSize)
	for i := 0; i < grid.Len(); i++ {
		cell := grid.CellAt(i)
		dx := cell.X - px
		dy := cell.Y - py
		dist := math.Sqrt(dx*dx + dy*dy)

		alpha := cell.Fade * spotlightAlpha(dist, cfg.SpotlightRadius, cfg.SpotlightFeather)
		if alpha < 0.01 {
			continue
		}

		jx := cfg.JitterAmplitude * math.Cos(cell.JitterPhase+cell.JitterSeed*6.283185307179586)
		jy := cfg.JitterAmplitude * math.Sin(cell.JitterPhase*0.9+cell.JitterSeed*4.71)

		clr := colorText
		if heldCells[i] {
			clr = colorHold
		}

		pos := rl.Vector2{
			X: float32(cell.X+jx) - fontSize*0.3,
			Y: float32(cell.Y+jy) - fontSize*0.5,
		}
		drawGlyph(cell.Char, pos, fontSize, rl.Fade(clr, float32(alpha)))
	}

	// Feathered spotlight rim, purely decorative.
	rl.DrawCircleLines(int32(px), int32(py), float32(cfg.SpotlightRadius), rl.Fade(colorDim, 0.3))

	if held != nil {
		center := rl.Vector2{X: float32(px), Y: float32(py)}
		rl.DrawRing(center, 16, 22, -90, -90+float32(360*progress), 48, rl.Fade(colorHold, 0.85))
	}

	ui.drawSentence()
}

func (ui *gameUI) drawSentence() {
	line := sentenceLine(ui.session.SentenceWords())
	if line == "" {
		return
	}
	drawText(line, 20, ui.height-40, 22, rl.Fade(colorAccent, 0.9))
}

// spotlightAlpha is the radial visibility factor: 1 inside the hard core of
// the spotlight, 0 outside it, linear across the feather band.
func spotlightAlpha(dist, radius, feather float64) float64 {
	if dist >= radius {
		return 0
	}
	if feather <= 0 || dist <= radius-feather {
		return 1
	}
	return (radius - dist) / feather
}

func sentenceLine(words []string) string {
	return strings.Join(words, " ")
}
