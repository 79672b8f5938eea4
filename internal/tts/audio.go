package tts

import (
	"encoding/binary"
	"time"
)

// AudioFormat describes raw PCM framing. The service works in uncompressed
// PCM internally so silence is zero-fill and buffers concatenate without
// re-encoding; WrapWAV adds a container for clients.
type AudioFormat struct {
	SampleRate    int `json:"sample_rate"`
	BitsPerSample int `json:"bits_per_sample"`
	Channels      int `json:"channels"`
}

// DefaultFormat matches the raw-16khz-16bit-mono-pcm output requested from
// the speech provider.
var DefaultFormat = AudioFormat{SampleRate: 16000, BitsPerSample: 16, Channels: 1}

func (f AudioFormat) blockAlign() int {
	return f.Channels * f.BitsPerSample / 8
}

// BytesPerSecond returns the PCM data rate.
func (f AudioFormat) BytesPerSecond() int {
	return f.SampleRate * f.blockAlign()
}

// Silence returns d worth of silent PCM, truncated to a whole number of
// sample frames. Zero bytes are silence in signed 16-bit PCM.
func Silence(d time.Duration, f AudioFormat) []byte {
	n := int(d.Seconds() * float64(f.BytesPerSecond()))
	if align := f.blockAlign(); align > 0 {
		n -= n % align
	}
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

// WrapWAV prepends a RIFF/WAVE header to raw PCM.
func WrapWAV(pcm []byte, f AudioFormat) []byte {
	out := make([]byte, 44+len(pcm))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(pcm)))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(f.BytesPerSecond()))
	binary.LittleEndian.PutUint16(out[32:34], uint16(f.blockAlign()))
	binary.LittleEndian.PutUint16(out[34:36], uint16(f.BitsPerSample))

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(pcm)))
	copy(out[44:], pcm)

	return out
}
