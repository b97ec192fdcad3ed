package system

import (
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/state"
)

// AudioSystem plays queued sounds and the running loop. While muted every
// request is dropped and playing voices are paused.
type AudioSystem struct {
	game *state.Game
	// Bank is respawned as an entity whenever the world has none. Nil
	// means sound is unavailable; the queue is still drained.
	Bank *component.Audio
}

func NewAudioSystem(g *state.Game) *AudioSystem {
	return &AudioSystem{game: g}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	g := a.game
	sounds := g.Events.Sounds.Drain()

	a.ensureEntity(w)
	ent, ok := w.First(component.AudioComponent)
	if !ok {
		return
	}
	audioComp, ok := ecs.Get(w, ent, component.AudioComponent)
	if !ok {
		return
	}

	if g.Muted {
		for i := range audioComp.Play {
			audioComp.Play[i] = false
		}
		for i := range audioComp.Stop {
			audioComp.Stop[i] = true
		}
	} else {
		for _, snd := range sounds {
			audioComp.Request(snd.String())
		}
		if g.Phase.Simulating() && !g.Dead && playerMoving(w) {
			audioComp.Request(state.SoundRunning.String())
		} else {
			audioComp.Halt(state.SoundRunning.String())
		}
	}

	playVoices(audioComp)
}

func (a *AudioSystem) ensureEntity(w *ecs.World) {
	if a.Bank == nil {
		return
	}
	if _, ok := w.First(component.AudioComponent); ok {
		return
	}
	if _, err := entity.NewAudio(w, a.Bank); err != nil {
		log.Printf("[audio] warning: %v", err)
	}
}

func playVoices(audioComp *component.Audio) {
	count := len(audioComp.Play)
	if len(audioComp.Voices) < count {
		count = len(audioComp.Voices)
	}

	for i := 0; i < count; i++ {
		if !audioComp.Play[i] {
			continue
		}

		voice := audioComp.Voices[i]
		if voice != nil && !voice.IsPlaying() {
			if i < len(audioComp.Volume) {
				voice.SetVolume(audioComp.Volume[i])
			}
			if err := voice.Rewind(); err != nil {
				log.Printf("[audio] warning: rewind %s: %v", audioComp.Names[i], err)
			}
			voice.Play()
		}

		audioComp.Play[i] = false
	}

	for i := 0; i < count && i < len(audioComp.Stop); i++ {
		if !audioComp.Stop[i] {
			continue
		}

		voice := audioComp.Voices[i]
		if voice != nil && voice.IsPlaying() {
			voice.Pause()
		}

		audioComp.Stop[i] = false
	}
}

func playerMoving(w *ecs.World) bool {
	player, ok := playerEntity(w)
	if !ok {
		return false
	}
	cc, ok := ecs.Get(w, player, component.CharacterControllerComponent)
	return ok && cc.Direction.LengthSq() > 0
}
