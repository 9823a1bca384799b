package camgizmo

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

type App struct {
	stages        []Stage
	systems       map[string][]systemFn
	resources     map[reflect.Type]any
	ecs           *Ecs
	exitRequested bool
	started       bool

	// Command Buffering
	pendingAdditions []pendingAdd
	pendingRemovals  []EntityId
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

// NewApp returns an app with the default stages.
func NewApp() *App {
	return NewAppBuilder().Build()
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
	}
	return app
}

// Run executes frames until a system requests exit or fails. The failing
// system's error is returned.
func (app *App) Run() error {
	logger := app.Logger()
	logger.Infof("running %d stages", len(app.stages))

	for {
		if err := app.Step(); err != nil {
			logger.Errorf("%v", err)
			return err
		}
		if app.exitRequested {
			return nil
		}
	}
}

// Step executes exactly one frame: every stage in order, flushing queued
// commands after each stage.
func (app *App) Step() error {
	if !app.started {
		app.started = true
		app.FlushCommands()
	}

	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			if err := app.callSystem(system); err != nil {
				return err
			}
		}
		app.FlushCommands()
	}
	return nil
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the registered resource of type T, or nil.
func Resource[T any](app *App) *T {
	if r, ok := app.resources[reflect.TypeFor[T]()]; ok {
		return r.(*T)
	}
	return nil
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfError    = reflect.TypeOf((*error)(nil)).Elem()
)

func (app *App) callSystem(system systemFn) error {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				systemName(system),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}

	out := systemValue.Call(args)
	if len(out) == 0 || !systemType.Out(len(out)-1).Implements(typeOfError) {
		return nil
	}
	if err, ok := out[len(out)-1].Interface().(error); ok && err != nil {
		return &SystemError{System: systemName(system), Err: err}
	}
	return nil
}

func systemName(system systemFn) string {
	return runtime.FuncForPC(reflect.ValueOf(system).Pointer()).Name()
}

// SystemError wraps the error a system returned with the system's name.
type SystemError struct {
	System string
	Err    error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("system %s: %v", e.System, e.Err)
}

func (e *SystemError) Unwrap() error { return e.Err }

// IsSystemError reports whether err came out of a system call.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 {
		return
	}

	// 1. Process Removals first (so we don't add to dead entities)
	for _, eid := range app.pendingRemovals {
		app.ecs.removeEntity(eid)
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	// 2. Process Additions
	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]
}
