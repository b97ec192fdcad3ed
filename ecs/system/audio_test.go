package system

import (
	"testing"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

type fakeVoice struct {
	playing bool
	plays   int
	pauses  int
	volume  float64
}

func (v *fakeVoice) IsPlaying() bool       { return v.playing }
func (v *fakeVoice) Play()                 { v.playing = true; v.plays++ }
func (v *fakeVoice) Pause()                { v.playing = false; v.pauses++ }
func (v *fakeVoice) Rewind() error         { return nil }
func (v *fakeVoice) SetVolume(vol float64) { v.volume = vol }

func testBank(t *testing.T) (*component.Audio, map[state.Sound]*fakeVoice) {
	t.Helper()
	voices := make(map[state.Sound]*fakeVoice)
	var clips []entity.Clip
	for _, snd := range state.Sounds() {
		v := &fakeVoice{}
		voices[snd] = v
		clips = append(clips, entity.Clip{Name: snd.String(), Voice: v, Volume: 0.5})
	}
	bank, err := entity.NewAudioBank(clips)
	if err != nil {
		t.Fatalf("NewAudioBank: %v", err)
	}
	return bank, voices
}

func TestNoticesPlaySounds(t *testing.T) {
	tests := []struct {
		name   string
		notice state.NoticeKind
		want   state.Sound
		muted  bool
	}{
		{"block", state.NoticeBlocked, state.SoundShieldBlock, false},
		{"reflect", state.NoticeReflected, state.SoundReflect, false},
		{"heal", state.NoticeHealed, state.SoundHeal, false},
		{"unlock", state.NoticeUnlocked, state.SoundNewSkill, false},
		{"muted block", state.NoticeBlocked, state.SoundShieldBlock, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Muted = tc.muted
			w := ecs.NewWorld()
			testPlayer(t, w, cp.Vector{})
			bank, voices := testBank(t)
			audio := NewAudioSystem(g)
			audio.Bank = bank

			g.Events.Notices.Push(state.Notice{Kind: tc.notice})
			NewNoticeSystem(g, nil).Update(w)
			if got := g.Events.Sounds.Len(); got != 1 {
				t.Fatalf("expected 1 queued sound, got %d", got)
			}
			audio.Update(w)

			if g.Events.Sounds.Len() != 0 {
				t.Fatalf("expected sounds drained")
			}
			v := voices[tc.want]
			if tc.muted {
				if v.plays != 0 {
					t.Fatalf("expected no playback while muted, got %d", v.plays)
				}
				return
			}
			if v.plays != 1 || v.volume != 0.5 {
				t.Fatalf("expected one play at volume 0.5, got %d at %v", v.plays, v.volume)
			}
		})
	}
}

func TestLevelUpNoticeIsSilent(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	g.Events.Notices.Push(state.Notice{Kind: state.NoticeLevelUp, Levels: 1})
	NewNoticeSystem(g, nil).Update(w)
	if got := g.Events.Sounds.Len(); got != 0 {
		t.Fatalf("expected no sound for a level up, got %d", got)
	}
}

func TestAudioMutePausesPlayingVoices(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	bank, voices := testBank(t)
	audio := NewAudioSystem(g)
	audio.Bank = bank

	g.Events.Sounds.Push(state.SoundDeath)
	audio.Update(w)
	if !voices[state.SoundDeath].playing {
		t.Fatalf("expected death sound playing")
	}

	g.Muted = true
	g.Events.Sounds.Push(state.SoundMeleeHit)
	audio.Update(w)
	if voices[state.SoundDeath].playing || voices[state.SoundDeath].pauses != 1 {
		t.Fatalf("expected death sound paused once on mute")
	}
	if voices[state.SoundMeleeHit].plays != 0 {
		t.Fatalf("expected melee hit dropped while muted")
	}
}

func TestAudioRunningFollowsMovement(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	player := testPlayer(t, w, cp.Vector{})
	bank, voices := testBank(t)
	audio := NewAudioSystem(g)
	audio.Bank = bank
	running := voices[state.SoundRunning]

	audio.Update(w)
	if running.plays != 0 {
		t.Fatalf("expected silence while standing still")
	}

	cc, _ := ecs.Get(w, player, component.CharacterControllerComponent)
	cc.Direction = cp.Vector{X: 1}
	audio.Update(w)
	audio.Update(w)
	if running.plays != 1 || !running.playing {
		t.Fatalf("expected running loop started once, got %d plays", running.plays)
	}

	g.Phase = state.Paused
	audio.Update(w)
	if running.playing {
		t.Fatalf("expected running loop paused outside play")
	}
}

func TestAudioRespawnsBankAfterWorldClear(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	bank, voices := testBank(t)
	audio := NewAudioSystem(g)
	audio.Bank = bank

	audio.Update(w)
	for _, e := range ecs.Entities(w) {
		ecs.DestroyEntity(w, e)
	}
	g.Events.Sounds.Push(state.SoundHeal)
	audio.Update(w)
	if count(w, component.AudioComponent) != 1 {
		t.Fatalf("expected the audio entity recreated")
	}
	if voices[state.SoundHeal].plays != 1 {
		t.Fatalf("expected heal played after clear")
	}
}

func TestAudioDrainsWithoutBank(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	g.Events.Sounds.Push(state.SoundDeath)
	NewAudioSystem(g).Update(w)
	if g.Events.Sounds.Len() != 0 {
		t.Fatalf("expected queue drained without a bank")
	}
}
