package assets

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var (
	rectMu    sync.Mutex
	rectCache = map[rectKey]*ebiten.Image{}
)

type rectKey struct {
	w, h int
	c    color.RGBA
}

// Rect returns a solid w×h placeholder sprite. Images are cached per size and
// color so pooled entities share one texture.
func Rect(w, h int, clr color.Color) *ebiten.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	r, g, b, a := clr.RGBA()
	key := rectKey{w: w, h: h, c: color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}}

	rectMu.Lock()
	defer rectMu.Unlock()
	if img, ok := rectCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	rectCache[key] = img
	return img
}

func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// LoadAudioPlayer creates a player for a named synthesized clip.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	switch name {
	case "shoot":
		return audioContext().NewPlayerFromBytes(ShootPCM()), nil
	default:
		return nil, fmt.Errorf("assets: unknown sound %q", name)
	}
}

// ShootPCM synthesizes a short descending blip as 16-bit little-endian
// stereo PCM at 44.1kHz.
func ShootPCM() []byte {
	const (
		duration  = 0.08
		startFreq = 1400.0
		endFreq   = 400.0
		amplitude = 0.3
	)
	n := int(duration * sampleRate)
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := startFreq + (endFreq-startFreq)*t
		phase += 2 * math.Pi * freq / sampleRate
		// square wave with a linear fade out
		v := amplitude * (1 - t)
		if math.Sin(phase) < 0 {
			v = -v
		}
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
