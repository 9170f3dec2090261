// Package audiotest writes real WAV and AIFF files for tests using the
// go-audio encoders.
package audiotest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

// Format describes the file to write.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// Frames is the number of sample frames written to every file.
const Frames = 64

func (f Format) buffer() *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
		SourceBitDepth: f.BitDepth,
		Data:           make([]int, Frames*f.Channels),
	}

	// a quiet saw wave, valid at every bit depth
	for i := range buf.Data {
		buf.Data[i] = (i%32 - 16) * 4
	}

	return buf
}

// WriteWav writes a PCM WAV file at path, creating parent directories.
func WriteWav(tb testing.TB, path string, f Format) {
	tb.Helper()

	out := create(tb, path)
	defer out.Close()

	enc := wav.NewEncoder(out, f.SampleRate, f.BitDepth, f.Channels, wavFormatPCM)
	if err := enc.Write(f.buffer()); err != nil {
		tb.Fatalf("encode wav: %v", err)
	}

	if err := enc.Close(); err != nil {
		tb.Fatalf("close wav encoder: %v", err)
	}
}

// WriteAiff writes an AIFF file at path, creating parent directories.
func WriteAiff(tb testing.TB, path string, f Format) {
	tb.Helper()

	out := create(tb, path)
	defer out.Close()

	enc := aiff.NewEncoder(out, f.SampleRate, f.BitDepth, f.Channels)
	if err := enc.Write(f.buffer()); err != nil {
		tb.Fatalf("encode aiff: %v", err)
	}

	if err := enc.Close(); err != nil {
		tb.Fatalf("close aiff encoder: %v", err)
	}
}

// WriteFile writes raw bytes at path, creating parent directories.
func WriteFile(tb testing.TB, path string, data []byte) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("create dir: %v", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}

func create(tb testing.TB, path string) *os.File {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("create dir: %v", err)
	}

	out, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}

	return out
}
