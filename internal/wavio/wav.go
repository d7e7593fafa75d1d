package wavio

import (
	"context"
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/austinkregel/swipe/internal/pitch"
)

// WAVDecoder decodes RIFF/WAVE files directly, without shelling out.
// Grounded on go-audio/wav, the same library family (go-audio/audio,
// go-audio/riff) the broader retrieval pack reaches for whenever a
// component needs PCM straight out of a .wav file rather than through
// a media-player output sink.
type WAVDecoder struct{}

// Decode reads path as a WAVE file and returns its content as a
// single-channel Signal, downmixing multi-channel audio by averaging.
func (WAVDecoder) Decode(ctx context.Context, path string) (pitch.Signal, error) {
	if err := ctx.Err(); err != nil {
		return pitch.Signal{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return pitch.Signal{}, fmt.Errorf("wavio: open %q: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return pitch.Signal{}, fmt.Errorf("wavio: %q is not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pitch.Signal{}, fmt.Errorf("wavio: decode %q: %w", path, err)
	}

	floats := buf.AsFloatBuffer().Data
	mono := downmix(floats, buf.Format.NumChannels)

	return pitch.Signal{
		Samples: mono,
		Rate:    float64(buf.Format.SampleRate),
	}, nil
}
