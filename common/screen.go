package common

// Logical screen size; the window scales it.
const (
	BaseWidth  = 960
	BaseHeight = 540
)
