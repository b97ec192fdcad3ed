package component

// WhiteFlash makes a sprite render white while active. Timing is frame-based.
type WhiteFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
