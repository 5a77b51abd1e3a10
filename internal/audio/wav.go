package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// DefaultSampleRate is the render rate for tone cues. Tones are short and
// low-frequency; 22.05 kHz keeps files small without audible artifacts.
const DefaultSampleRate = 22050

// attack is the linear fade-in applied to every tone, in seconds.
const attack = 0.010

// RenderPCM mixes the tones into interleaved stereo 16-bit samples at the
// given rate. The buffer length covers the longest tone. Pan maps to
// constant-sum channel gains: -1 is hard left, 0 equal, 1 hard right.
func RenderPCM(sampleRate int, tones ...ToneSpec) ([]int16, error) {
	if len(tones) == 0 {
		return nil, fmt.Errorf("no tones to render")
	}
	var maxDur float64
	for _, t := range tones {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if d := t.Duration.Seconds(); d > maxDur {
			maxDur = d
		}
	}

	frames := int(maxDur * float64(sampleRate))
	samples := make([]float64, frames*2)

	for _, t := range tones {
		dur := t.Duration.Seconds()
		toneFrames := int(dur * float64(sampleRate))
		leftGain := (1 - t.Pan) / 2
		rightGain := (1 + t.Pan) / 2

		for i := 0; i < toneFrames; i++ {
			ts := float64(i) / float64(sampleRate)
			v := t.Volume * math.Sin(2*math.Pi*t.Frequency*ts) * envelope(ts, dur)
			samples[2*i] += v * leftGain
			samples[2*i+1] += v * rightGain
		}
	}

	out := make([]int16, len(samples))
	for i, s := range samples {
		// Clamp the mix; simultaneous tones can sum past full scale.
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		out[i] = int16(s * math.MaxInt16)
	}
	return out, nil
}

// envelope is the linear amplitude ramp at time ts of a tone lasting dur
// seconds: ~10ms fade in, fade out over the remaining duration.
func envelope(ts, dur float64) float64 {
	if ts < attack && attack < dur {
		return ts / attack
	}
	release := dur - attack
	if release <= 0 {
		return 1
	}
	return 1 - (ts-attack)/release
}

// WriteWAV renders the tones and writes a stereo 16-bit PCM RIFF file.
func WriteWAV(w io.Writer, sampleRate int, tones ...ToneSpec) error {
	pcm, err := RenderPCM(sampleRate, tones...)
	if err != nil {
		return err
	}

	dataLen := len(pcm) * 2
	const headerLen = 36

	var buf [4]byte
	write := func(b []byte) error {
		_, err := w.Write(b)
		return err
	}
	writeU32 := func(v uint32) error {
		binary.LittleEndian.PutUint32(buf[:], v)
		return write(buf[:4])
	}
	writeU16 := func(v uint16) error {
		binary.LittleEndian.PutUint16(buf[:2], v)
		return write(buf[:2])
	}

	steps := []func() error{
		func() error { return write([]byte("RIFF")) },
		func() error { return writeU32(uint32(headerLen + dataLen)) },
		func() error { return write([]byte("WAVE")) },
		func() error { return write([]byte("fmt ")) },
		func() error { return writeU32(16) },                           // PCM chunk size
		func() error { return writeU16(1) },                            // PCM format
		func() error { return writeU16(2) },                            // stereo
		func() error { return writeU32(uint32(sampleRate)) },
		func() error { return writeU32(uint32(sampleRate * 4)) },       // byte rate
		func() error { return writeU16(4) },                            // block align
		func() error { return writeU16(16) },                           // bits per sample
		func() error { return write([]byte("data")) },
		func() error { return writeU32(uint32(dataLen)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("failed to write WAV header: %w", err)
		}
	}

	sampleBytes := make([]byte, dataLen)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(sampleBytes[i*2:], uint16(s))
	}
	if err := write(sampleBytes); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return nil
}

// WAVSink renders every cue into the writer as a WAV stream. It is the
// CLI's file-output adapter; a platform sink would hand the PCM to the
// sound device instead.
type WAVSink struct {
	W          io.Writer
	SampleRate int
}

func (s *WAVSink) Play(tones ...ToneSpec) error {
	rate := s.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	return WriteWAV(s.W, rate, tones...)
}
