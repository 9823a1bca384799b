// Command camgizmo opens a window with the orientation gizmo and main camera
// rigs. Press E to switch between key and mouse panning, Z/X to yaw the
// gizmo in key mode, Escape to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/camgizmo"
	"github.com/gekko3d/camgizmo/platform"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg := camgizmo.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = camgizmo.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if debug {
		cfg.Log.Debug = true
	}

	app := camgizmo.NewAppBuilder().
		UseModule(
			camgizmo.LoggingModule{Prefix: cfg.Log.Prefix, Debug: cfg.Log.Debug},
			camgizmo.TimeModule{},
			platform.NewWindowModule(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title),
			camgizmo.CameraGizmoModule{Config: &cfg},
		).
		Build()

	if w := camgizmo.Resource[platform.Window](app); w != nil {
		defer w.Close()
	}

	app.UseSystem(camgizmo.System(quitOnEscape).InStage(camgizmo.PreUpdate))
	app.UseSystem(camgizmo.System(logRenderViews).InStage(camgizmo.PostRender))

	return app.Run()
}

func quitOnEscape(cmd *camgizmo.Commands, input *camgizmo.Input) {
	if input.IsJustPressed(camgizmo.KeyEscape) {
		cmd.Exit()
	}
}

// logRenderViews stands in for a renderer: every 60 frames it reports what
// each camera would draw.
func logRenderViews(cmd *camgizmo.Commands, views *camgizmo.RenderViews, t *camgizmo.Time) {
	logger := cmd.Logger()
	if !logger.DebugEnabled() || t.Frame%60 != 0 {
		return
	}
	for _, v := range views.Views {
		logger.Debugf("camera %v priority %d viewport %v position %v drawables %d",
			v.Camera, v.Priority, v.Viewport, v.Position, len(v.Drawables))
	}
}
