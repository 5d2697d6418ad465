package archetypes

import (
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/automoto/gohta/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Menu = newArchetype(
		tags.Menu,
		components.Menu,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
		components.Object,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Participant = newArchetype(
		components.Participant,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
