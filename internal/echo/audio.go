package echo

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate   = 44100
	chirpSeconds = 0.25
	chirpStartHz = 1200.0
	chirpEndHz   = 300.0
)

// Pinger owns the audio context and the synthesized sonar chirp. A nil
// Pinger is silent, which is how muting works.
type Pinger struct {
	ctx *audio.Context
	pcm []byte
}

// NewPinger opens the process audio context and renders the chirp
// once. Only one Pinger may exist per process.
func NewPinger() *Pinger {
	return &Pinger{
		ctx: audio.NewContext(sampleRate),
		pcm: chirpPCM(),
	}
}

// Play starts one playback of the chirp. Players are fire-and-forget;
// the context keeps them alive until the buffer runs out.
func (p *Pinger) Play() {
	if p == nil {
		return
	}
	player, err := p.ctx.NewPlayer(bytes.NewReader(p.pcm))
	if err != nil {
		log.Printf("Audio player creation failed: %v", err)
		return
	}
	player.Play()
}

// chirpPCM renders the descending chirp as 16-bit little-endian stereo
// PCM. The frequency sweeps from chirpStartHz down to chirpEndHz while
// the amplitude decays exponentially, so the tail is near-silent and
// playback needs no explicit fade-out.
func chirpPCM() []byte {
	n := int(sampleRate * chirpSeconds)
	buf := make([]byte, 0, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n)
		freq := chirpStartHz + (chirpEndHz-chirpStartHz)*u
		phase += 2 * math.Pi * freq / sampleRate
		amp := math.Exp(-5*u) * 0.4
		v := int16(amp * math.Sin(phase) * 32767)
		lo, hi := byte(v), byte(v>>8)
		buf = append(buf, lo, hi, lo, hi)
	}
	return buf
}
