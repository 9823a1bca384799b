package camgizmo

import (
	"reflect"
)

// QueryN iterates every entity that has all N component types. Component
// types passed as optionals may be missing; the callback then gets nil for
// them. Returning false from the callback stops the iteration.
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }
type Query4[A, B, C, D any] struct{ ecs *Ecs }

func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }
func MakeQuery4[A, B, C, D any](cmd *Commands) Query4[A, B, C, D] {
	return Query4[A, B, C, D]{ecs: cmd.app.ecs}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	id1, id2 := componentIdOf[A](q.ecs), componentIdOf[B](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		a, ok1 := column[A](arch, id1, opt)
		b, ok2 := column[B](arch, id2, opt)
		if !ok1 || !ok2 {
			continue
		}
		for eid, r := range arch.entities {
			if !m(eid, at(a, r), at(b, r)) {
				return
			}
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	id1, id2, id3 := componentIdOf[A](q.ecs), componentIdOf[B](q.ecs), componentIdOf[C](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		a, ok1 := column[A](arch, id1, opt)
		b, ok2 := column[B](arch, id2, opt)
		c, ok3 := column[C](arch, id3, opt)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		for eid, r := range arch.entities {
			if !m(eid, at(a, r), at(b, r), at(c, r)) {
				return
			}
		}
	}
}

func (q Query4[A, B, C, D]) Map(m func(EntityId, *A, *B, *C, *D) bool, optionals ...any) {
	id1, id2 := componentIdOf[A](q.ecs), componentIdOf[B](q.ecs)
	id3, id4 := componentIdOf[C](q.ecs), componentIdOf[D](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		a, ok1 := column[A](arch, id1, opt)
		b, ok2 := column[B](arch, id2, opt)
		c, ok3 := column[C](arch, id3, opt)
		d, ok4 := column[D](arch, id4, opt)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		for eid, r := range arch.entities {
			if !m(eid, at(a, r), at(b, r), at(c, r), at(d, r)) {
				return
			}
		}
	}
}

// column returns the archetype's storage for T. A missing optional type
// yields a nil slice and true; a missing required type yields false.
func column[T any](arch *archetype, id componentId, optional set[componentId]) ([]T, bool) {
	if data, ok := arch.componentData[id]; ok {
		return data.([]T), true
	}
	_, ok := optional[id]
	return nil, ok
}

func at[T any](comps []T, r row) *T {
	if comps == nil {
		return nil
	}
	return &comps[r]
}

func componentIdOf[T any](ecs *Ecs) componentId {
	return ecs.componentId(reflect.TypeFor[T]())
}

func identifyOptionals(ecs *Ecs, components ...any) set[componentId] {
	res := make(set[componentId])
	for _, c := range components {
		t := reflect.TypeOf(c)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		res[ecs.componentId(t)] = struct{}{}
	}
	return res
}
