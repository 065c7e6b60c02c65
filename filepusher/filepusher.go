// Package filepusher defines the drag-and-drop file collaborator contract
// of spec.md §3/§4.1. Actual APK/file pushing over adb is out of scope for
// this core; the dispatcher only requires presence to gate the DropFile
// event and then delegates entirely.
package filepusher

// Pusher accepts a host filesystem path dropped onto the window and is
// responsible for getting it onto the device (install, or copy to storage).
type Pusher interface {
	PushFile(path string) error
}
