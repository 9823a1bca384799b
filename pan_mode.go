package camgizmo

// PanMode selects how input turns the gizmo rig.
type PanMode int

const (
	// PanModeKeys turns in discrete yaw steps on key presses.
	PanModeKeys PanMode = iota
	// PanModeMouse turns continuously with mouse motion.
	PanModeMouse
)

func (m PanMode) String() string {
	if m == PanModeMouse {
		return "Mouse"
	}
	return "Keys"
}

// PanModeState is the process-wide pan mode. It is owned by the app and only
// mutated from the pan mode system.
type PanModeState struct {
	mode          PanMode
	toggled       bool
	lastToggledAt uint64
}

func (s *PanModeState) Mode() PanMode {
	return s.mode
}

// Toggle flips the mode once per input frame. Repeated calls for the same
// frame report false and leave the mode alone.
func (s *PanModeState) Toggle(frame uint64) bool {
	if s.toggled && s.lastToggledAt == frame {
		return false
	}
	s.toggled = true
	s.lastToggledAt = frame

	if s.mode == PanModeKeys {
		s.mode = PanModeMouse
	} else {
		s.mode = PanModeKeys
	}
	return true
}

// panModeSystem runs before the camera coordinator so a toggle applies to the
// same frame's camera update.
func panModeSystem(cmd *Commands, input *Input, state *PanModeState, settings *ControlSettings) {
	if input.IsJustPressed(settings.ToggleKey) && state.Toggle(input.Frame) {
		cmd.Logger().Infof("pan mode: %v", state.Mode())
	}
	input.MouseCaptured = state.Mode() == PanModeMouse
}
