// Package metrics exposes expvar counters for the input-translation core,
// generalized from the teacher's constants.go expvar block (which tracked
// frame/RTP/control-channel throughput) onto event-dispatch throughput.
package metrics

import "expvar"

var (
	EventsDispatched  = expvar.NewMap("input_events_dispatched_total")
	ShortcutsFired    = expvar.NewInt("input_shortcuts_fired_total")
	MessagesPushed    = expvar.NewInt("input_control_messages_pushed_total")
	MessagesDropped   = expvar.NewInt("input_control_messages_dropped_total")
	TouchmapLoadOK    = expvar.NewInt("input_touchmap_loads_ok_total")
	TouchmapLoadError = expvar.NewInt("input_touchmap_loads_error_total")
	ControllersOpen   = expvar.NewInt("input_gamepad_controllers_open")
)

// EventDispatched records one dispatched event of the given kind, e.g.
// "key_down", "mouse_motion", "controller_axis".
func EventDispatched(kind string) {
	EventsDispatched.Add(kind, 1)
}
