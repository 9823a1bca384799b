package camgizmo

import "iter"

// Events buffers the events of type T produced during one frame. Readers see
// every event sent since the last Clear, in send order.
type Events[T any] struct {
	buf []T
}

func (e *Events[T]) Send(events ...T) {
	e.buf = append(e.buf, events...)
}

func (e *Events[T]) Read() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ev := range e.buf {
			if !yield(ev) {
				return
			}
		}
	}
}

func (e *Events[T]) Clear() {
	clear(e.buf)
	e.buf = e.buf[:0]
}

// addEventChannel registers an Events[T] resource and clears it at the end of
// every frame. Installing the same channel twice is a no-op.
func addEventChannel[T any](app *App) *Events[T] {
	if existing := Resource[Events[T]](app); existing != nil {
		return existing
	}

	events := &Events[T]{}
	app.addResources(events)
	app.UseSystem(
		System(func(e *Events[T]) { e.Clear() }).
			InStage(Finale),
	)
	return events
}
