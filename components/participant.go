package components

import (
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
)

// ControllerKind says who drives a participant
type ControllerKind int

const (
	ControllerHuman ControllerKind = iota
	ControllerAI
)

// ParticipantData is one country taking part in a session.
// Difficulty is only read when Controller is ControllerAI.
type ParticipantData struct {
	Country    string
	Controller ControllerKind
	Difficulty cfg.BotDifficulty
}

var Participant = donburi.NewComponentType[ParticipantData]()
