package level

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/collision"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrEmptyLevel   = errors.New("level: no obstacle")
	ErrMissingLayer = errors.New("level: missing required layer")
	ErrOutOfBounds  = errors.New("level: obstacle out of bounds")
	ErrUnknownTile  = errors.New("level: unknown tile")
)

// Required layers must hold at least one obstacle
var Required = []collision.Layer{collision.LayerCollision}

// Level is the static part of a playable map: obstacle layers and spawn points
type Level struct {
	Space *collision.Space

	Width  float64
	Height float64

	PlayerSpawn mgl64.Vec2
	BallSpawn   mgl64.Vec2

	counts map[collision.Layer]int
}

// Count returns how many obstacles a layer holds
func (l *Level) Count(layer collision.Layer) int {
	return l.counts[layer]
}

// Builder collects the obstacle sets of a level before indexing them
type Builder struct {
	TileSize int

	rects       map[collision.Layer][]actor.Rect
	playerSpawn mgl64.Vec2
	ballSpawn   mgl64.Vec2
}

func NewBuilder(tileSize int) *Builder {
	return &Builder{
		TileSize: tileSize,
		rects:    make(map[collision.Layer][]actor.Rect),
	}
}

// Add appends an obstacle to a layer
func (b *Builder) Add(layer collision.Layer, r actor.Rect) *Builder {
	b.rects[layer] = append(b.rects[layer], r)
	return b
}

// Spawn sets the initial player and ball centers
func (b *Builder) Spawn(player, ball mgl64.Vec2) *Builder {
	b.playerSpawn = player
	b.ballSpawn = ball
	return b
}

// Build validates the layers and indexes them. A nil logger discards the output.
func (b *Builder) Build(logger *log.Logger) (*Level, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if b.TileSize <= 0 {
		return nil, fmt.Errorf("level: tile size must be positive, got %d", b.TileSize)
	}

	var width, height float64
	total := 0
	for _, layer := range collision.Layers() {
		for _, r := range b.rects[layer] {
			if r.Min.X() < 0 || r.Min.Y() < 0 {
				return nil, fmt.Errorf("%w: %s obstacle at %v", ErrOutOfBounds, layer, r.Min)
			}
			width = math.Max(width, r.Max.X())
			height = math.Max(height, r.Max.Y())
			total++
		}
	}
	if total == 0 {
		return nil, ErrEmptyLevel
	}
	for _, layer := range Required {
		if len(b.rects[layer]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingLayer, layer)
		}
	}

	lvl := &Level{
		Space:       collision.NewSpace(width, height, b.TileSize),
		Width:       width,
		Height:      height,
		PlayerSpawn: b.playerSpawn,
		BallSpawn:   b.ballSpawn,
		counts:      make(map[collision.Layer]int),
	}

	keyvals := []interface{}{"width", width, "height", height}
	for _, layer := range collision.Layers() {
		for _, r := range b.rects[layer] {
			lvl.Space.Add(r, layer)
		}
		lvl.counts[layer] = len(b.rects[layer])
		keyvals = append(keyvals, layer.String(), lvl.counts[layer])
	}
	logger.Debug("level loaded", keyvals...)

	return lvl, nil
}
