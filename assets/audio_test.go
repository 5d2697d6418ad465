package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/gohta/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	tone := cfg.ToneConfig{Frequency: 440, DurationMs: 100, Volume: 0.5}

	data := SynthesizeTone(44100, tone)

	// 4410 frames of 2 channels x 2 bytes
	if len(data) != 4410*4 {
		t.Fatalf("expected %d bytes, got %d", 4410*4, len(data))
	}
}

func TestSynthesizeToneEnvelopeStartsSilent(t *testing.T) {
	tone := cfg.ToneConfig{Frequency: 440, DurationMs: 100, Volume: 1}

	data := SynthesizeTone(44100, tone)

	first := int16(binary.LittleEndian.Uint16(data[0:]))
	last := int16(binary.LittleEndian.Uint16(data[len(data)-4:]))
	if first != 0 || last != 0 {
		t.Errorf("expected silent edges, got first=%d last=%d", first, last)
	}
}

func TestSynthesizeToneChannelsMatch(t *testing.T) {
	tone := cfg.ToneConfig{Frequency: 660, DurationMs: 40, Volume: 0.35}

	data := SynthesizeTone(44100, tone)

	for i := 0; i+4 <= len(data); i += 4 {
		l := binary.LittleEndian.Uint16(data[i:])
		r := binary.LittleEndian.Uint16(data[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
	}
}

func TestSynthesizeToneZeroDuration(t *testing.T) {
	if data := SynthesizeTone(44100, cfg.ToneConfig{Frequency: 440}); data != nil {
		t.Errorf("expected nil for zero duration, got %d bytes", len(data))
	}
}
