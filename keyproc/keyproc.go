// Package keyproc defines the optional "key processor" collaborator of
// spec.md §3/§9: the component that owns actual keyboard remapping and
// text injection policy. This core never remaps keys itself (an explicit
// Non-goal); it only asks the key processor to act, and silently skips the
// step when no processor — or no matching capability — is configured,
// exactly as spec.md §9 "Polymorphism" describes: "each callback optional;
// implementers fill what they support."
package keyproc

// KeyEvent is the normalized key event handed to a Processor.
type KeyEvent struct {
	Keycode int32
	Mod     uint16
	Down    bool
	Repeat  int32
}

// Processor turns host key events into remote key injection. A nil
// Processor disables the entire key-forwarding path (spec.md §4.1's
// "require key_proc" gate).
type Processor interface {
	ProcessKey(KeyEvent)
}

// TextInjector is the optional capability for processors that also accept
// raw composed text (IME input, legacy clipboard paste as text events).
type TextInjector interface {
	ProcessText(text string)
}

// AsyncPaster is the optional capability used by the clipboard-autosync
// path of spec.md §4.2: a processor that can suspend its own Ctrl+V
// injection until the device ACKs a given clipboard sequence number.
type AsyncPaster interface {
	AwaitClipboardSequence(seq uint64)
}
