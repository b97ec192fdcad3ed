package main

import (
	"github.com/WaterFace/wizards-spiral/assets"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/state"
)

const soundVolume = 0.5

// loadSoundBank decodes one voice per sound.
func loadSoundBank() (*component.Audio, error) {
	var clips []entity.Clip
	for _, snd := range state.Sounds() {
		player, err := assets.LoadAudioPlayer(assets.SoundPath(snd.String()))
		if err != nil {
			return nil, err
		}
		clips = append(clips, entity.Clip{Name: snd.String(), Voice: player, Volume: soundVolume})
	}
	return entity.NewAudioBank(clips)
}
