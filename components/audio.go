package components

import (
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued UI sounds (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
