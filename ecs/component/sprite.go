package component

import "image/color"

// Sprite is a flat shape drawn by the render system. Texture names the shape
// family; Color tints it.
type Sprite struct {
	Texture string
	Color   color.Color
	Width   float64
	Height  float64
	Circle  bool
}

var SpriteComponent = NewComponent[Sprite]()
