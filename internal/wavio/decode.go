package wavio

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"

	"github.com/austinkregel/swipe/internal/pitch"
)

// decodeSampleRate is the rate FFmpeg is asked to resample to. A
// fixed rate keeps the window-size ladder's assumptions (spec.md §3:
// rate is constant for the lifetime of a Signal) simple regardless of
// the source file's native rate.
const decodeSampleRate = 16000

// FFmpegDecoder shells out to ffmpeg for any format its native reader
// doesn't handle. Adapted from internal/audio/decoder.go's
// DecodeFrom: same ffmpeg invocation shape (signed 16-bit PCM to
// stdout, read in a loop, context-cancellable), retargeted to collect
// the decoded samples into a pitch.Signal instead of streaming them
// into a playback Output sink.
type FFmpegDecoder struct {
	ffmpegPath string
}

// NewFFmpegDecoder locates ffmpeg in PATH.
func NewFFmpegDecoder() (*FFmpegDecoder, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("wavio: ffmpeg not found in PATH: %w", err)
	}
	return &FFmpegDecoder{ffmpegPath: path}, nil
}

// Decode runs ffmpeg to produce mono 16-bit PCM at decodeSampleRate
// and converts it to a pitch.Signal.
func (d *FFmpegDecoder) Decode(ctx context.Context, path string) (pitch.Signal, error) {
	args := []string{
		"-i", path,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", decodeSampleRate),
		"-",
	}

	cmd := exec.CommandContext(ctx, d.ffmpegPath, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return pitch.Signal{}, fmt.Errorf("wavio: stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return pitch.Signal{}, fmt.Errorf("wavio: start ffmpeg: %w", err)
	}
	defer func() {
		if cmd.Process != nil {
			cmd.Process.Kill()
			cmd.Wait()
		}
	}()

	raw, err := io.ReadAll(stdout)
	if err != nil {
		return pitch.Signal{}, fmt.Errorf("wavio: read ffmpeg output: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		return pitch.Signal{}, fmt.Errorf("wavio: ffmpeg: %w", err)
	}

	n := len(raw) / 2
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		samples[i] = float64(v) / 32768.0
	}

	return pitch.Signal{Samples: samples, Rate: decodeSampleRate}, nil
}
