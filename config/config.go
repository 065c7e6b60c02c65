// Package config defines the InputManager's startup parameters (spec.md
// §6 "Configuration options"), built with a functional-options constructor
// in the same shape the teacher uses for adb.Options.
package config

import "fmt"

// ModifierMask is a bitmask over {LCTRL, RCTRL, LALT, RALT, LSUPER, RSUPER}.
type ModifierMask uint8

const (
	ModLCtrl ModifierMask = 1 << iota
	ModRCtrl
	ModLAlt
	ModRAlt
	ModLSuper
	ModRSuper
)

// Has reports whether any bit of other is set in m.
func (m ModifierMask) Has(other ModifierMask) bool {
	return m&other != 0
}

// MouseBinding selects what a non-left mouse button does.
type MouseBinding int

const (
	BindingDisabled MouseBinding = iota
	BindingClick
	BindingBack
	BindingHome
	BindingAppSwitch
	BindingExpandNotificationPanel
)

// MouseButton identifies one of the bindable secondary buttons. Left is
// always BindingClick and is not configurable.
type MouseButton int

const (
	ButtonRight MouseButton = iota
	ButtonMiddle
	ButtonX1
	ButtonX2
)

// Options mirrors spec.md §6 verbatim.
type Options struct {
	ShortcutMods          ModifierMask
	ForwardAllClicks      bool
	LegacyPaste           bool
	ClipboardAutosync     bool
	ForwardGameControllers bool
	TouchmapFile          string
	MouseBindings         map[MouseButton]MouseBinding
}

// Option mutates an Options value during construction.
type Option func(*Options)

// WithShortcutMods sets the modifier bitmask that arms shortcuts. At least
// one bit must be set; New returns an error otherwise.
func WithShortcutMods(m ModifierMask) Option {
	return func(o *Options) { o.ShortcutMods = m }
}

// WithForwardAllClicks forwards every mouse button raw, bypassing bindings.
func WithForwardAllClicks(v bool) Option {
	return func(o *Options) { o.ForwardAllClicks = v }
}

// WithLegacyPaste selects text-event injection over clipboard sync for Ctrl+V.
func WithLegacyPaste(v bool) Option {
	return func(o *Options) { o.LegacyPaste = v }
}

// WithClipboardAutosync enables the non-shortcut Ctrl+V clipboard-sync path.
func WithClipboardAutosync(v bool) Option {
	return func(o *Options) { o.ClipboardAutosync = v }
}

// WithForwardGameControllers selects raw gamepad forwarding over the
// touchmap engine.
func WithForwardGameControllers(v bool) Option {
	return func(o *Options) { o.ForwardGameControllers = v }
}

// WithTouchmapFile loads a touchmap at startup.
func WithTouchmapFile(path string) Option {
	return func(o *Options) { o.TouchmapFile = path }
}

// WithMouseBinding assigns a binding to a non-left button.
func WithMouseBinding(b MouseButton, binding MouseBinding) Option {
	return func(o *Options) {
		if o.MouseBindings == nil {
			o.MouseBindings = make(map[MouseButton]MouseBinding)
		}
		o.MouseBindings[b] = binding
	}
}

// New builds validated Options. Defaults: shortcut mods = LCTRL|RCTRL,
// right-click = BindingClick (the common "secondary click" default), no
// other binding set.
func New(opts ...Option) (Options, error) {
	o := Options{
		ShortcutMods: ModLCtrl | ModRCtrl,
		MouseBindings: map[MouseButton]MouseBinding{
			ButtonRight: BindingClick,
		},
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.ShortcutMods == 0 {
		return Options{}, fmt.Errorf("config: at least one shortcut modifier must be configured")
	}
	return o, nil
}

// HasSecondaryClick is the derived flag from spec.md §3: true iff any
// non-left binding is BindingClick.
func (o Options) HasSecondaryClick() bool {
	for _, b := range o.MouseBindings {
		if b == BindingClick {
			return true
		}
	}
	return false
}

// Binding returns the configured binding for a non-left button, defaulting
// to BindingDisabled when unset.
func (o Options) Binding(b MouseButton) MouseBinding {
	if o.MouseBindings == nil {
		return BindingDisabled
	}
	if v, ok := o.MouseBindings[b]; ok {
		return v
	}
	return BindingDisabled
}
