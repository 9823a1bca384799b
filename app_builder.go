package camgizmo

import (
	"reflect"
)

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	ecs := MakeEcs()
	return &AppBuilder{app: &App{
		resources: make(map[reflect.Type]any),
		systems:   make(map[string][]systemFn),
		ecs:       &ecs,
	}}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build creates the default stages, installs the modules in order and flushes
// the entities they spawned.
func (b *AppBuilder) Build() *App {
	app := b.app
	for _, stage := range defaultStages {
		app.initStage(stage)
	}

	app.UseModules(b.modules...)
	app.FlushCommands()

	return app
}
