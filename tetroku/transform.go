package tetroku

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Transform names one rigid transformation of a Mino.
type Transform uint8

const (
	Identity Transform = iota
	FlipHorizontal
	FlipVertical
	RotateCW90
	Rotate180
	RotateCCW90
	// Transpose and AntiTranspose are the diagonal reflections; they complete
	// the symmetry group of the square.
	Transpose
	AntiTranspose
)

var allTransforms = [...]Transform{
	Identity, FlipHorizontal, FlipVertical, RotateCW90,
	Rotate180, RotateCCW90, Transpose, AntiTranspose,
}

var transformNames = [...]string{
	Identity:       "identity",
	FlipHorizontal: "flip-horizontal",
	FlipVertical:   "flip-vertical",
	RotateCW90:     "rotate-cw-90",
	Rotate180:      "rotate-180",
	RotateCCW90:    "rotate-ccw-90",
	Transpose:      "transpose",
	AntiTranspose:  "anti-transpose",
}

func (t Transform) String() string {
	if int(t) < len(transformNames) {
		return transformNames[t]
	}
	return fmt.Sprintf("Transform(%d)", uint8(t))
}

// Apply returns m transformed by t.
func (t Transform) Apply(m Mino) Mino {
	switch t {
	case FlipHorizontal:
		return m.FlipHorizontal()
	case FlipVertical:
		return m.FlipVertical()
	case RotateCW90:
		return m.RotateCW90()
	case Rotate180:
		return m.Rotate180()
	case RotateCCW90:
		return m.RotateCCW90()
	case Transpose:
		return m.FlipHorizontal().RotateCCW90()
	case AntiTranspose:
		return m.FlipHorizontal().RotateCW90()
	default:
		return m
	}
}

// Orientations returns the distinct shapes reachable from m by rigid
// transformations, starting with m itself. Order follows the Transform
// constants.
func (m Mino) Orientations() []Mino {
	seen := intmap.New[uint32, struct{}](len(allTransforms))
	out := make([]Mino, 0, len(allTransforms))
	for _, t := range allTransforms {
		o := t.Apply(m)
		if _, dup := seen.Get(o.Key()); dup {
			continue
		}
		seen.Put(o.Key(), struct{}{})
		out = append(out, o)
	}
	return out
}
