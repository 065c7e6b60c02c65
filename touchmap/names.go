package touchmap

// Button codes reuse SDL's own CONTROLLER_BUTTON_* ordering verbatim (the
// NAME vocabulary of spec.md §4.4 was lifted from SDL's game-controller
// API), which is why the gamepad touchmap engine can dispatch on the same
// byte the host event source reports without a translation table of its
// own.
const (
	ButtonA uint8 = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonMisc1
	ButtonPaddle1
	ButtonPaddle2
	ButtonPaddle3
	ButtonPaddle4
	ButtonTouchpad

	// MaxButton is the count of real digital buttons; trigger axes are
	// encoded starting at this offset (spec.md §4.4 "Trigger-as-button
	// encoding") so that analog trigger events can reuse the same
	// button-dispatch path as digital buttons.
	MaxButton
)

// Axis indices match SDL's CONTROLLER_AXIS_* ordering.
const (
	AxisLeftX uint8 = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

// ButtonInvalid is stored for unrecognized NAME values; it never matches a
// real event (spec.md §7 "Unknown button name").
const ButtonInvalid uint8 = 255

// TriggerButtonCode returns the virtual button code an analog trigger axis
// is dispatched as, per spec.md §4.4/§4.5.
func TriggerButtonCode(axis uint8) uint8 {
	return MaxButton + axis
}

// buttonNameToValue is the closed vocabulary of spec.md §4.4. Note the
// teacher's original table had a copy-paste bug mapping both "LT|L2" and
// "RT|R2" to TRIGGERLEFT; this table fixes it per spec.md §9's bug note —
// RT|R2 maps to TRIGGERRIGHT.
var buttonNameToValue = map[string]uint8{
	"A":        ButtonA,
	"B":        ButtonB,
	"X":        ButtonX,
	"Y":        ButtonY,
	"BACK":     ButtonBack,
	"SELECT":   ButtonBack,
	"GUIDE":    ButtonGuide,
	"HOME":     ButtonGuide,
	"START":    ButtonStart,
	"LTHUMB":   ButtonLeftStick,
	"L3":       ButtonLeftStick,
	"RTHUMB":   ButtonRightStick,
	"R3":       ButtonRightStick,
	"LB":       ButtonLeftShoulder,
	"L1":       ButtonLeftShoulder,
	"RB":       ButtonRightShoulder,
	"R1":       ButtonRightShoulder,
	"UP":       ButtonDPadUp,
	"DOWN":     ButtonDPadDown,
	"LEFT":     ButtonDPadLeft,
	"RIGHT":    ButtonDPadRight,
	"MISC":     ButtonMisc1,
	"PADDLE1":  ButtonPaddle1,
	"PADDLE2":  ButtonPaddle2,
	"PADDLE3":  ButtonPaddle3,
	"PADDLE4":  ButtonPaddle4,
	"TOUCHPAD": ButtonTouchpad,
	"LT":       TriggerButtonCode(AxisTriggerLeft),
	"L2":       TriggerButtonCode(AxisTriggerLeft),
	"RT":       TriggerButtonCode(AxisTriggerRight),
	"R2":       TriggerButtonCode(AxisTriggerRight),
}

// buttonValueFromName maps a NAME to its button code, or ButtonInvalid for
// anything outside the closed vocabulary.
func buttonValueFromName(name string) uint8 {
	if v, ok := buttonNameToValue[name]; ok {
		return v
	}
	return ButtonInvalid
}
