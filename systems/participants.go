package systems

import (
	"fmt"
	"log"

	"github.com/automoto/gohta/archetypes"
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewParticipant returns a human-controlled participant for country
func NewParticipant(country string) components.ParticipantData {
	return components.ParticipantData{
		Country:    country,
		Controller: components.ControllerHuman,
	}
}

// NewBot returns an AI-controlled participant for country
func NewBot(country string, difficulty cfg.BotDifficulty) components.ParticipantData {
	return components.ParticipantData{
		Country:    country,
		Controller: components.ControllerAI,
		Difficulty: difficulty,
	}
}

// SpawnParticipant adds a participant entity to the world
func SpawnParticipant(e *ecs.ECS, p components.ParticipantData) *donburi.Entry {
	entry := archetypes.Participant.Spawn(e)
	components.Participant.SetValue(entry, p)
	return entry
}

// Participants returns every participant in the world
func Participants(e *ecs.ECS) []components.ParticipantData {
	var out []components.ParticipantData
	components.Participant.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, *components.Participant.Get(entry))
	})
	return out
}

// IsAI reports whether the participant is bot-controlled
func IsAI(p components.ParticipantData) bool {
	return p.Controller == components.ControllerAI
}

// ControllerName returns a display name for the participant's controller
func ControllerName(p components.ParticipantData) string {
	switch p.Controller {
	case components.ControllerHuman:
		return "Human"
	case components.ControllerAI:
		return "AI (" + BotTuning(p).Name + ")"
	default:
		return fmt.Sprintf("Controller(%d)", int(p.Controller))
	}
}

// BotTuning returns the difficulty table for an AI participant. Human
// participants get the zero value.
func BotTuning(p components.ParticipantData) cfg.BotDifficultyConfig {
	if !IsAI(p) {
		return cfg.BotDifficultyConfig{}
	}
	tuning, ok := cfg.Bot.Difficulties[p.Difficulty]
	if !ok {
		return cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	return tuning
}

// StartSession replaces the roster with the configured single player
// session: one human and the configured bots.
func StartSession(e *ecs.ECS) []components.ParticipantData {
	EndSession(e)

	SpawnParticipant(e, NewParticipant(cfg.Session.HumanCountry))
	for _, slot := range cfg.Session.Bots {
		SpawnParticipant(e, NewBot(slot.Country, slot.Difficulty))
	}

	roster := Participants(e)
	for _, p := range roster {
		log.Printf("Session: %s controlled by %s", p.Country, ControllerName(p))
	}
	return roster
}

// EndSession removes every participant
func EndSession(e *ecs.ECS) {
	var entities []donburi.Entity
	components.Participant.Each(e.World, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	for _, entity := range entities {
		e.World.Remove(entity)
	}
}

// UpdateSession keeps a roster only while SP is active. Must run AFTER
// UpdateDispatcher.
func UpdateSession(e *ecs.ECS) {
	d := GetOrCreateDispatcher(e)
	active := len(Participants(e)) > 0

	switch {
	case d.Current == cfg.StateSP && !active:
		StartSession(e)
	case d.Current != cfg.StateSP && active:
		EndSession(e)
		log.Printf("Session: ended on %s -> %s", d.Previous, d.Current)
	}
}
