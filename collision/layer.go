package collision

import "strings"

// Layer is one of the named obstacle sets of a level.
type Layer uint8

const (
	// LayerCollision is solid for both the player and the ball
	LayerCollision Layer = 1 << iota
	// LayerBallSolid is solid for the ball only
	LayerBallSolid
	// LayerOnlyBall is solid for the player only
	LayerOnlyBall
	// LayerNoBall is solid for the player while it carries the ball; grabbing inside it is refused
	LayerNoBall
	// LayerWithBall is solid for the player while it does not carry the ball
	LayerWithBall
	// LayerSlowBall damps the ball velocity
	LayerSlowBall
	// LayerFinish stops the run clock when the ball reaches it
	LayerFinish
)

var layerNames = [...]struct {
	layer Layer
	name  string
}{
	{LayerCollision, "collision"},
	{LayerBallSolid, "ball_solid"},
	{LayerOnlyBall, "only_ball"},
	{LayerNoBall, "no_ball"},
	{LayerWithBall, "with_ball"},
	{LayerSlowBall, "slow_ball"},
	{LayerFinish, "finish"},
}

// Layers returns every layer, in level-data order
func Layers() []Layer {
	layers := make([]Layer, 0, len(layerNames))
	for _, l := range layerNames {
		layers = append(layers, l.layer)
	}
	return layers
}

func (l Layer) String() string {
	for _, n := range layerNames {
		if n.layer == l {
			return n.name
		}
	}
	return "unknown"
}

// ParseLayer resolves a layer from its level-data name
func ParseLayer(name string) (Layer, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range layerNames {
		if n.name == name {
			return n.layer, true
		}
	}
	return 0, false
}

// Mask is a set of layers
type Mask uint8

func MaskOf(layers ...Layer) Mask {
	var m Mask
	for _, l := range layers {
		m |= Mask(l)
	}
	return m
}

func (m Mask) Has(l Layer) bool {
	return m&Mask(l) != 0
}

func (m Mask) With(l Layer) Mask {
	return m | Mask(l)
}

func (m Mask) Without(l Layer) Mask {
	return m &^ Mask(l)
}

func (m Mask) String() string {
	var names []string
	for _, n := range layerNames {
		if m.Has(n.layer) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
