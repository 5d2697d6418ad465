package systems

import (
	"github.com/automoto/gohta/archetypes"
	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/automoto/gohta/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cell size of the hit region grid
const spaceCellSize = 16

// GetOrCreateSpace returns the resolv space holding button hit regions
func GetOrCreateSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		entry = archetypes.Space.Spawn(e)
		components.Space.Set(entry, resolv.NewSpace(cfg.C.Width, cfg.C.Height, spaceCellSize, spaceCellSize))
	}
	return components.Space.Get(entry)
}

// AddToSpace adds objects to the hit region space
func AddToSpace(e *ecs.ECS, objects ...*resolv.Object) {
	GetOrCreateSpace(e).Add(objects...)
}

// RemoveFromSpace removes objects from the hit region space
func RemoveFromSpace(e *ecs.ECS, objects ...*resolv.Object) {
	GetOrCreateSpace(e).Remove(objects...)
}

// getOrCreatePointer returns the 1x1 object that tracks the pointer
func getOrCreatePointer(e *ecs.ECS) *resolv.Object {
	entry, ok := tags.Pointer.First(e.World)
	if !ok {
		entry = archetypes.Pointer.Spawn(e)
		obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
		components.Object.Set(entry, &components.ObjectData{Object: obj})
		AddToSpace(e, obj)
	}
	return components.Object.Get(entry).Object
}

// syncPointer moves the pointer object to the latest pointer position
func syncPointer(e *ecs.ECS, input *components.InputData) *resolv.Object {
	pointer := getOrCreatePointer(e)
	pointer.X = float64(input.PointerX)
	pointer.Y = float64(input.PointerY)
	pointer.Update()
	return pointer
}

// pointerOver reports whether the pointer lies inside the button's
// half-open rectangle. The space check narrows candidates by cell.
func pointerOver(obj *resolv.Object, input *components.InputData) bool {
	if obj.W <= 0 || obj.H <= 0 {
		return false
	}
	if obj.Check(0, 0, tags.ResolvPointer) == nil {
		return false
	}
	return ContainsPoint(obj.X, obj.Y, obj.W, obj.H, float64(input.PointerX), float64(input.PointerY))
}

// ContainsPoint is the half-open containment test x <= px < x+w, y <= py < y+h
func ContainsPoint(x, y, w, h, px, py float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

func objectOf(entry *donburi.Entry) *resolv.Object {
	if !entry.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(entry).Object
}
