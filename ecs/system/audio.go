package system

import (
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players), len(audioComp.Volume))

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			// shots overlap, so restart the clip even mid-play
			player := audioComp.Players[i]
			if player == nil {
				continue
			}
			player.SetVolume(audioComp.Volume[i])
			if err := player.Rewind(); err != nil {
				continue
			}
			player.Play()
		}

		for i := 0; i < min(count, len(audioComp.Stop)); i++ {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false

			if player := audioComp.Players[i]; player != nil && player.IsPlaying() {
				player.Pause()
			}
		}
	})
}
