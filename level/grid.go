package level

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/collision"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	PlayerSpawnTile = 'P'
	BallSpawnTile   = 'B'
)

// Legend maps grid characters to layers
type Legend map[rune]collision.Layer

// DefaultLegend is the legend used by FromGrid when none is given
var DefaultLegend = Legend{
	'#': collision.LayerCollision,
	'b': collision.LayerBallSolid,
	'o': collision.LayerOnlyBall,
	'n': collision.LayerNoBall,
	'w': collision.LayerWithBall,
	's': collision.LayerSlowBall,
	'F': collision.LayerFinish,
}

// FromGrid lays out a character grid of square tiles. The first row is the top of the level.
// '.' and ' ' are empty, 'P' and 'B' place the player and ball spawns at the tile center,
// consecutive tiles of the same layer on a row are merged in one obstacle.
func FromGrid(rows []string, tileSize int, legend Legend) (*Builder, error) {
	if legend == nil {
		legend = DefaultLegend
	}

	b := NewBuilder(tileSize)
	tile := float64(tileSize)

	for r, row := range rows {
		y := float64(len(rows)-1-r) * tile
		runes := []rune(row)

		for c := 0; c < len(runes); {
			ch := runes[c]
			x := float64(c) * tile
			center := mgl64.Vec2{x + tile/2, y + tile/2}

			switch ch {
			case '.', ' ':
				c++
				continue
			case PlayerSpawnTile:
				b.playerSpawn = center
				c++
				continue
			case BallSpawnTile:
				b.ballSpawn = center
				c++
				continue
			}

			layer, ok := legend[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrUnknownTile, ch, r, c)
			}

			end := c + 1
			for end < len(runes) && runes[end] == ch {
				end++
			}
			b.Add(layer, actor.Rect{
				Min: mgl64.Vec2{x, y},
				Max: mgl64.Vec2{float64(end) * tile, y + tile},
			})
			c = end
		}
	}

	return b, nil
}

// ReadGrid reads a character grid, one row per line. Blank lines are kept as empty rows,
// trailing blank lines are dropped.
func ReadGrid(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: read grid: %w", err)
	}

	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}
