// Package wavio turns audio files on disk into pitch.Signal values:
// a native WAV reader for the common case, with an FFmpeg subprocess
// fallback for everything else.
package wavio

import (
	"context"
	"fmt"

	"github.com/austinkregel/swipe/internal/pitch"
)

// Decoder reads an audio file into a single-channel pitch.Signal.
// Multi-channel input is downmixed by averaging channels.
type Decoder interface {
	Decode(ctx context.Context, path string) (pitch.Signal, error)
}

// Open decodes path with the WAV decoder, falling back to the FFmpeg
// decoder when the file is not a valid RIFF/WAVE container. Adapted
// from internal/audio/decoder.go's ffmpeg-first design: that daemon
// always shelled out because it played arbitrary streaming formats,
// but most pitch-tracking input is already WAV, so the native decoder
// is tried first and ffmpeg is reserved for everything else.
func Open(ctx context.Context, path string) (pitch.Signal, error) {
	sig, err := (&WAVDecoder{}).Decode(ctx, path)
	if err == nil {
		return sig, nil
	}

	ffmpeg, ffErr := NewFFmpegDecoder()
	if ffErr != nil {
		return pitch.Signal{}, fmt.Errorf("wavio: %q is not a valid WAV file and no ffmpeg fallback is available: %w", path, err)
	}
	return ffmpeg.Decode(ctx, path)
}

// downmix averages interleaved multi-channel samples into mono.
func downmix(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}
	n := len(samples) / channels
	mono := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}
