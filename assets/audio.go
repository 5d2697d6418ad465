package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/gohta/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Attack/release length as a fraction of the tone
const envelopeFraction = 0.1

// SFXLoader synthesizes and caches launcher sound effects
type SFXLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache PCM bytes per sound
	context  *audio.Context
}

// NewSFXLoader creates a new loader with the given context
func NewSFXLoader(ctx *audio.Context) *SFXLoader {
	return &SFXLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player
func (l *SFXLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
// PCM bytes are cached for instant playback.
func (l *SFXLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *SFXLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}

	data := SynthesizeTone(l.context.SampleRate(), tone)
	l.sfxCache[id] = data
	return data, nil
}

// SynthesizeTone renders a sine tone as 16-bit little-endian stereo PCM,
// the format ebiten's audio players expect.
func SynthesizeTone(sampleRate int, tone cfg.ToneConfig) []byte {
	n := sampleRate * tone.DurationMs / 1000
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	ramp := int(float64(n) * envelopeFraction)

	for i := 0; i < n; i++ {
		gain := tone.Volume
		switch {
		case ramp > 0 && i < ramp:
			gain *= float64(i) / float64(ramp)
		case ramp > 0 && i >= n-ramp:
			gain *= float64(n-1-i) / float64(ramp)
		}

		v := math.Sin(2 * math.Pi * tone.Frequency * float64(i) / float64(sampleRate))
		s := int16(v * gain * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
