package entity

import (
	"fmt"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
)

// Clip is one loaded sound for an audio bank.
type Clip struct {
	Name   string
	Voice  component.Voice
	Volume float64
}

// NewAudioBank lays clips out as an Audio component.
func NewAudioBank(clips []Clip) (*component.Audio, error) {
	n := len(clips)
	if n == 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	voices := make([]component.Voice, 0, n)
	volume := make([]float64, 0, n)
	for i, clip := range clips {
		if clip.Voice == nil {
			return nil, fmt.Errorf("audio clip %d (%q): no voice", i, clip.Name)
		}
		names = append(names, clip.Name)
		voices = append(voices, clip.Voice)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:  names,
		Voices: voices,
		Volume: volume,
		Play:   make([]bool, n),
		Stop:   make([]bool, n),
	}, nil
}

// NewAudio creates the entity that owns bank. It is not a room object, so it
// outlives room changes.
func NewAudio(w *ecs.World, bank *component.Audio) (ecs.Entity, error) {
	if bank == nil {
		return 0, fmt.Errorf("audio: nil bank")
	}
	return build(w, "audio",
		with(component.AudioComponent, bank),
	)
}
