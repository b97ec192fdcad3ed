package component

import "image/color"

// FloatingText is a world-space label that drifts upward, e.g. level-up
// notices. Pair it with TTL.
type FloatingText struct {
	Text  string
	Color color.Color
	Rise  float64
}

var FloatingTextComponent = NewComponent[FloatingText]()
