package assets

import (
	"encoding/binary"
	"testing"
)

func TestShootPCM(t *testing.T) {
	pcm := ShootPCM()
	if len(pcm) == 0 || len(pcm)%4 != 0 {
		t.Fatalf("expected whole stereo 16-bit frames, got %d bytes", len(pcm))
	}

	// channels carry the same sample
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
	}

	// the clip fades out
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last > 200 || last < -200 {
		t.Fatalf("expected near-silent tail, got %d", last)
	}
}
