package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/akmonengine/clover"
	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/collision"
	"github.com/akmonengine/clover/input/gamepad"
	"github.com/akmonengine/clover/level"
	"github.com/akmonengine/clover/sfx"
	"github.com/akmonengine/clover/tuning"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenW  = 1280
	screenH  = 720
	tileSize = 32
)

//go:embed levels/default.txt
var defaultLevel []byte

var layerColors = map[collision.Layer]color.RGBA{
	collision.LayerCollision: {R: 90, G: 90, B: 100, A: 255},
	collision.LayerBallSolid: {R: 60, G: 110, B: 160, A: 255},
	collision.LayerOnlyBall:  {R: 160, G: 110, B: 60, A: 255},
	collision.LayerNoBall:    {R: 160, G: 40, B: 40, A: 120},
	collision.LayerWithBall:  {R: 40, G: 160, B: 40, A: 120},
	collision.LayerSlowBall:  {R: 120, G: 60, B: 160, A: 120},
	collision.LayerFinish:    {R: 220, G: 200, B: 40, A: 160},
}

type Game struct {
	session *clover.Session
	sampler *gamepad.Sampler

	camera  [2]float64
	message string
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		g.message = ""
	}

	g.session.Tick(g.sampler.Sample(), g.session.Tuning.Tick)

	// Follow the player, clamped to the level
	lvl := g.session.Level
	player := g.session.Player.Position
	g.camera[0] = max(screenW/2, min(player.X(), lvl.Width-screenW/2))
	g.camera[1] = max(screenH/2, min(player.Y(), lvl.Height-screenH/2))

	return nil
}

// toScreen converts a y-up world rect to screen space
func (g *Game) toScreen(r actor.Rect) (x, y, w, h float32) {
	size := r.Size()
	x = float32(r.Min.X() - g.camera[0] + screenW/2)
	y = float32(screenH/2 - (r.Max.Y() - g.camera[1]))
	return x, y, float32(size.X()), float32(size.Y())
}

func (g *Game) fill(screen *ebiten.Image, r actor.Rect, clr color.Color) {
	x, y, w, h := g.toScreen(r)
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 22, B: 30, A: 255})

	for _, o := range g.session.Level.Space.Obstacles() {
		g.fill(screen, o.Bounds, layerColors[o.Layer])
	}

	state := g.session.Snapshot()
	playerColor := color.RGBA{R: 200, G: 200, B: 220, A: 255}
	if !state.Armed {
		playerColor = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	}
	g.fill(screen, state.Player.Bounds, playerColor)
	g.fill(screen, state.Ball.Bounds, color.RGBA{R: 240, G: 120, B: 40, A: 255})

	// Facing marker
	nose := g.session.Player.Facing().Mul(g.session.Player.HalfExtents.Y()).Add(state.Player.Position)
	g.fill(screen, actor.RectFromCenter(nose, mgl64.Vec2{3, 3}), color.White)

	status := fmt.Sprintf("TIME %.2f  %s", state.Elapsed, state.Grab)
	if !state.Armed {
		status += "  DISARMED"
	}
	ebitenutil.DebugPrintAt(screen, status, 18, 14)
	ebitenutil.DebugPrintAt(screen, "Thrust: W  Roll: A/D  Arm: Space  Grab: E  Restart: R", 18, 34)
	if g.message != "" {
		ebitenutil.DebugPrintAt(screen, g.message, screenW/2-80, screenH/2)
	}
}

func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

func loadLevel(path string, logger *log.Logger) (*level.Level, error) {
	data := defaultLevel
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("level: %w", err)
		}
	}

	rows, err := level.ReadGrid(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b, err := level.FromGrid(rows, tileSize, nil)
	if err != nil {
		return nil, err
	}
	return b.Build(logger)
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning file, built-in values when empty")
	levelPath := flag.String("level", "", "level grid file, built-in level when empty")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "clover",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	t := tuning.Default()
	if *tuningPath != "" {
		var err error
		if t, err = tuning.Load(*tuningPath); err != nil {
			logger.Fatal("cannot load tuning", "err", err)
		}
	}

	lvl, err := loadLevel(*levelPath, logger)
	if err != nil {
		logger.Fatal("cannot load level", "err", err)
	}

	game := &Game{
		session: clover.NewSession(lvl, t, logger),
		sampler: gamepad.New(),
	}
	game.session.Subscribe(clover.FINISH, func(event clover.Event) {
		e := event.(clover.FinishEvent)
		game.message = fmt.Sprintf("FINISH %.2fs  %s", e.Elapsed, e.Tier)
	})

	if !*mute {
		if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10)); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			sfx.NewCues(sfx.SampleRate, speaker.Play).Listen(game.session)
		}
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("clover")
	ebiten.SetTPS(int(math.Round(1 / t.Tick)))
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Fatal("game stopped", "err", err)
	}
}
