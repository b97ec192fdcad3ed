package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed sounds/*.wav
var assetsFS embed.FS

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// SoundPath is the embedded path of a named sound effect.
func SoundPath(name string) string {
	return path.Join("sounds", name+".wav")
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(name string) ([]byte, error) {
	return assetsFS.ReadFile(strings.TrimPrefix(name, "assets/"))
}

// LoadAudioPlayer decodes an embedded wav and creates a player on the shared
// audio context.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	b, err := LoadFile(name)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", name, err)
	}
	return sharedContext().NewPlayer(stream)
}
