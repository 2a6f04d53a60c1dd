package clgeom

// ErrorCode is the numeric status reported through the out-parameter of every
// exported C function. Exceptions and panics never cross the boundary; this
// is the only failure channel.
//
// Convention: the caller stores CodeUnset in the slot before the call. After
// the call, CodeSuccess means the operation completed; any other value names
// the failure kind and the returned value must not be used.
type ErrorCode uint32

const (
	// CodeSuccess reports a completed operation.
	CodeSuccess ErrorCode = 0

	// CodeEnumerationFailure reports that platform/device discovery failed,
	// including the no-platforms and no-devices cases.
	CodeEnumerationFailure ErrorCode = 1

	// CodeAllocationFailure reports a failed allocation while marshaling
	// results for the caller.
	CodeAllocationFailure ErrorCode = 2

	// CodeInvalidDeviceReference reports a device that is not part of the
	// manager it was passed with.
	CodeInvalidDeviceReference ErrorCode = 3

	// CodeNativeContextCreationFailure reports that the native runtime
	// refused to build the context.
	CodeNativeContextCreationFailure ErrorCode = 4

	// CodeNativeResourceReleaseFailure reports a failed native release during
	// a drop call. The caller-side memory is reclaimed regardless.
	CodeNativeResourceReleaseFailure ErrorCode = 5

	// CodeUnset is the sentinel callers are expected to store in the
	// out-parameter before a call. It is never written back by this library,
	// so a slot still holding it means the operation never ran.
	CodeUnset ErrorCode = 100
)
