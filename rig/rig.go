// Package rig composes camera poses out of an ordered chain of drivers.
//
// A rig owns its drivers exclusively. Drivers are evaluated front to back,
// each one receiving the transform accumulated by the drivers before it.
// Callers mutate individual drivers between updates through Get.
package rig

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrDriverNotPresent = errors.New("driver not present in rig")
	ErrDuplicateDriver  = errors.New("driver kind already present in rig")
)

type Rig struct {
	drivers []Driver

	// Final is the transform produced by the last Update.
	Final Transform
}

type RigBuilder struct {
	drivers []Driver
}

func Builder() *RigBuilder {
	return &RigBuilder{}
}

func (b *RigBuilder) With(drivers ...Driver) *RigBuilder {
	b.drivers = append(b.drivers, drivers...)
	return b
}

// Build validates that every driver kind appears at most once and resolves the
// initial pose with a zero time step.
func (b *RigBuilder) Build() (*Rig, error) {
	seen := make(map[Kind]struct{}, len(b.drivers))
	for _, d := range b.drivers {
		if d == nil || reflect.ValueOf(d).IsNil() {
			return nil, errors.New("rig: nil driver")
		}
		if _, ok := seen[d.Kind()]; ok {
			return nil, fmt.Errorf("rig: %w: %s", ErrDuplicateDriver, d.Kind())
		}
		seen[d.Kind()] = struct{}{}
	}

	r := &Rig{
		drivers: append([]Driver(nil), b.drivers...),
		Final:   Identity(),
	}
	r.Update(0)
	return r, nil
}

// Update runs the driver chain once. dt is in seconds.
func (r *Rig) Update(dt float32) Transform {
	t := Identity()
	for _, d := range r.drivers {
		t = d.update(dt, t)
	}
	r.Final = t
	return t
}

func (r *Rig) Has(kind Kind) bool {
	for _, d := range r.drivers {
		if d.Kind() == kind {
			return true
		}
	}
	return false
}

// Kinds lists the driver kinds in evaluation order.
func (r *Rig) Kinds() []Kind {
	kinds := make([]Kind, len(r.drivers))
	for i, d := range r.drivers {
		kinds[i] = d.Kind()
	}
	return kinds
}

// Get returns the rig's driver of type D, e.g. Get[*YawPitch](r).
func Get[D Driver](r *Rig) (D, error) {
	for _, d := range r.drivers {
		if typed, ok := d.(D); ok {
			return typed, nil
		}
	}

	var zero D
	return zero, fmt.Errorf("rig: %w: %s", ErrDriverNotPresent, kindName(zero))
}

func kindName[D Driver](d D) string {
	if any(d) == nil {
		return reflect.TypeFor[D]().String()
	}
	// Kind methods never dereference their receiver, so a typed nil is fine.
	return d.Kind().String()
}
