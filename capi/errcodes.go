package main

import (
	"errors"

	clgeom "github.com/anderslreed/libclgeom"
)

// codeForCreateContextError separates "the manager does not know this device"
// from genuine native context-creation failures.
func codeForCreateContextError(err error) clgeom.ErrorCode {
	if errors.Is(err, clgeom.ErrUnknownDevice) {
		return clgeom.CodeInvalidDeviceReference
	}
	return clgeom.CodeNativeContextCreationFailure
}
