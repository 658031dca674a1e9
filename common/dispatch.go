package common

import "errors"

// ErrUnknownCall is returned when a call doesn't belong to any known module
// or has an unknown tag.
var ErrUnknownCall = errors.New("unknown call")

// Dispatcher is implemented by every runtime module. Dispatch executes call
// on behalf of caller against the module state and returns a module error
// on failure.
type Dispatcher[C any] interface {
	Dispatch(caller AccountID, call C) error
}
