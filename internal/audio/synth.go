package audio

import (
	"encoding/binary"
	"math"
)

const (
	tapDuration  = 0.03 // seconds
	tapFrequency = 1800 // Hz
	tapPeak      = 0.6
	tapDecay     = 120 // 1/s
)

// TapPCM synthesises a short decaying click as 16-bit little-endian stereo
// PCM, used when no tap clip is configured.
func TapPCM(sampleRate int) []byte {
	frames := int(float64(sampleRate) * tapDuration)
	pcm := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		v := tapPeak * math.Exp(-tapDecay*t) * math.Sin(2*math.Pi*tapFrequency*t)
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(pcm[i*4:], s)
		binary.LittleEndian.PutUint16(pcm[i*4+2:], s)
	}
	return pcm
}
