// Package tone renders the placeholder background tone bed played under the
// prosody-plus-tone study condition. Output is a mono 16-bit PCM WAV file.
package tone

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

const (
	DefaultFrequency = 220.0
	DefaultAmplitude = 0.2

	sampleRate = 16000
)

type Generator struct {
	Frequency float64
	Amplitude float64 // 0..1
}

func NewGenerator() *Generator {
	return &Generator{
		Frequency: DefaultFrequency,
		Amplitude: DefaultAmplitude,
	}
}

// Generate renders a sine tone of the given duration. Output is
// deterministic for identical inputs.
func (g *Generator) Generate(duration time.Duration) []byte {
	samples := int(duration.Seconds() * sampleRate)

	if samples < 0 {
		samples = 0
	}

	amplitude := g.Amplitude

	if amplitude < 0 {
		amplitude = 0
	}

	if amplitude > 1 {
		amplitude = 1
	}

	data := make([]byte, 0, samples*2)

	for i := 0; i < samples; i++ {
		val := amplitude * math.Sin(2*math.Pi*g.Frequency*float64(i)/sampleRate)
		sample := int16(val * math.MaxInt16)

		data = binary.LittleEndian.AppendUint16(data, uint16(sample))
	}

	return wrapWAV(data)
}

// wrapWAV prepends a canonical 44-byte RIFF/WAVE header for mono PCM16.
func wrapWAV(pcm []byte) []byte {
	var b bytes.Buffer

	writeUint32 := func(v uint32) {
		binary.Write(&b, binary.LittleEndian, v)
	}

	writeUint16 := func(v uint16) {
		binary.Write(&b, binary.LittleEndian, v)
	}

	b.WriteString("RIFF")
	writeUint32(uint32(36 + len(pcm)))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	writeUint32(16)               // chunk size
	writeUint16(1)                // PCM
	writeUint16(1)                // mono
	writeUint32(sampleRate)       // sample rate
	writeUint32(sampleRate * 2)   // byte rate
	writeUint16(2)                // block align
	writeUint16(16)               // bits per sample

	b.WriteString("data")
	writeUint32(uint32(len(pcm)))
	b.Write(pcm)

	return b.Bytes()
}
