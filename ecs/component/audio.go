package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Voice is the part of *audio.Player the audio system drives.
type Voice interface {
	IsPlaying() bool
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

var _ Voice = (*audio.Player)(nil)

// Audio is a bank of named voices. Play and Stop are requests consumed by the
// audio system on its next update.
type Audio struct {
	Names  []string
	Voices []Voice
	Volume []float64
	Play   []bool
	Stop   []bool
}

// Request marks the named voice for playback. Unknown names are ignored.
func (a *Audio) Request(name string) {
	if i := a.index(name); i >= 0 && i < len(a.Play) {
		a.Play[i] = true
	}
}

// Halt marks the named voice to be paused.
func (a *Audio) Halt(name string) {
	if i := a.index(name); i >= 0 && i < len(a.Stop) {
		a.Stop[i] = true
	}
}

func (a *Audio) index(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
