package camgizmo

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
	"sync"
)

type EntityId uint64
type archetypeId uint64
type componentId uint32
type row int
type set[T comparable] = map[T]struct{}

// Ecs stores components by archetype: every distinct set of component types
// gets one archetype holding a typed slice per type, indexed by row.
type Ecs struct {
	archetypes  map[archetypeId]*archetype
	entityIndex map[EntityId]archetypeId

	mu             sync.Mutex
	nextEntity     EntityId
	componentIds   map[reflect.Type]componentId
	componentTypes []reflect.Type
}

func MakeEcs() Ecs {
	return Ecs{
		archetypes:   make(map[archetypeId]*archetype),
		entityIndex:  make(map[EntityId]archetypeId),
		componentIds: make(map[reflect.Type]componentId),
	}
}

type archetype struct {
	key           []componentId
	entities      map[EntityId]row
	componentData map[componentId]any // []T per component type
	free          []row
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.mu.Lock()
	defer ecs.mu.Unlock()

	id := ecs.nextEntity
	ecs.nextEntity++
	return id
}

// insertEntity stores components under an id from nextEntityId. Pointer
// components are stored by value.
func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) {
	values := make([]reflect.Value, len(components))
	key := make([]componentId, 0, len(components))
	for i, component := range components {
		v := reflect.ValueOf(component)
		if v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			panic(fmt.Sprintf("component should be a struct, got %s", v.Kind()))
		}
		values[i] = v
		key = append(key, ecs.componentId(v.Type()))
	}
	slices.Sort(key)
	key = slices.Compact(key)

	id, arch := ecs.archetypeFor(key)
	r := ecs.reserveRow(arch)
	for _, v := range values {
		reflectSliceSet(arch.componentData[ecs.componentId(v.Type())], int(r), v)
	}

	arch.entities[entityId] = r
	ecs.entityIndex[entityId] = id
}

// removeEntity frees the entity's row for reuse. Unknown ids are ignored.
func (ecs *Ecs) removeEntity(entityId EntityId) {
	id, ok := ecs.entityIndex[entityId]
	if !ok {
		return
	}
	arch := ecs.archetypes[id]
	arch.free = append(arch.free, arch.entities[entityId])
	delete(arch.entities, entityId)
	delete(ecs.entityIndex, entityId)
}

func (ecs *Ecs) archetypeFor(key []componentId) (archetypeId, *archetype) {
	hash := fnv.New64a()
	buf := make([]byte, 4)
	for _, c := range key {
		binary.LittleEndian.PutUint32(buf, uint32(c))
		hash.Write(buf)
	}
	id := archetypeId(hash.Sum64())

	if arch, ok := ecs.archetypes[id]; ok {
		return id, arch
	}
	arch := &archetype{
		key:           key,
		entities:      make(map[EntityId]row),
		componentData: make(map[componentId]any, len(key)),
	}
	for _, c := range key {
		arch.componentData[c] = reflectSliceMake(ecs.componentTypes[c])
	}
	ecs.archetypes[id] = arch
	return id, arch
}

func (ecs *Ecs) reserveRow(arch *archetype) row {
	if n := len(arch.free); n > 0 {
		r := arch.free[n-1]
		arch.free = arch.free[:n-1]
		return r
	}

	r := row(len(arch.entities))
	for _, c := range arch.key {
		arch.componentData[c] = reflectSliceAppend(arch.componentData[c], reflect.Zero(ecs.componentTypes[c]))
	}
	return r
}

func (ecs *Ecs) componentId(t reflect.Type) componentId {
	ecs.mu.Lock()
	defer ecs.mu.Unlock()

	if id, ok := ecs.componentIds[t]; ok {
		return id
	}
	id := componentId(len(ecs.componentTypes))
	ecs.componentIds[t] = id
	ecs.componentTypes = append(ecs.componentTypes, t)
	return id
}
