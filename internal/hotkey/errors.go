package hotkey

import (
	"errors"
	"fmt"
)

// ErrChannelClosed is returned when the cross-thread command channel is no
// longer usable because the Listener has been closed or its event thread is
// gone. The Listener cannot recover; build a new one.
var ErrChannelClosed = errors.New("hotkey: event thread channel closed")

// ErrUnknownReply reports a reply from the event thread that the facade
// cannot interpret. It indicates a protocol bug, not an OS failure.
var ErrUnknownReply = errors.New("hotkey: unexpected reply from event thread")

// AlreadyRegisteredError is returned when a hotkey value is already bound.
type AlreadyRegisteredError struct {
	Hotkey Hotkey
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("hotkey %s already registered", e.Hotkey)
}

// NotRegisteredError is returned when unregistering a hotkey value that was
// never registered (or has already been unregistered).
type NotRegisteredError struct {
	Hotkey Hotkey
}

func (e NotRegisteredError) Error() string {
	return fmt.Sprintf("hotkey %s not registered", e.Hotkey)
}

// APIError reports a native call the OS refused, e.g. a grab already held
// by another process. Code carries the platform error code where one exists
// (Win32 GetLastError, Carbon OSStatus); Err carries the underlying error
// where the platform reports one. Never retried automatically.
type APIError struct {
	Op   string
	Code int64
	Err  error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hotkey: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("hotkey: %s failed (code %d)", e.Op, e.Code)
}

func (e *APIError) Unwrap() error { return e.Err }
