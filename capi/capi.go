package main

/*
#include <stdint.h>
#include "clgeom_types.h"
*/
import "C"
import (
	"unsafe"

	clgeom "github.com/anderslreed/libclgeom"
	"github.com/anderslreed/libclgeom/cl"
	"k8s.io/klog/v2"
)

// writeErrorCode stores the final code in the caller's out-parameter. Runs
// deferred so every exit path of an export reports exactly once.
func writeErrorCode(slot *C.uint32_t, code *clgeom.ErrorCode) {
	if slot != nil {
		*slot = C.uint32_t(*code)
	}
}

// recoverToCode converts a panic into an error code instead of letting it
// unwind across the C boundary, which would abort the process.
func recoverToCode(code *clgeom.ErrorCode, fallback clgeom.ErrorCode) {
	if r := recover(); r != nil {
		klog.Errorf("Recovered panic at the C boundary: %v", r)
		*code = fallback
	}
}

// marshalDevices copies a device snapshot into a C-allocated array of
// ClgeomDeviceInfo with C-allocated name strings. Freed by freeDevices.
func marshalDevices(devices []clgeom.DeviceInfo) *C.ClgeomDeviceInfo {
	arr := cMallocArray[C.ClgeomDeviceInfo](len(devices))
	if arr == nil {
		return nil
	}
	slice := unsafe.Slice(arr, len(devices))
	for i, dev := range devices {
		slice[i] = C.ClgeomDeviceInfo{
			device_id:     C.size_t(dev.Device),
			device_name:   C.CString(dev.Name),
			platform_id:   C.size_t(dev.Platform),
			platform_name: C.CString(dev.PlatformName),
		}
	}
	return arr
}

// freeDevices releases the name strings and the array itself.
func freeDevices(arr *C.ClgeomDeviceInfo, n int) {
	if arr == nil {
		return
	}
	for _, dev := range cDataToSlice[C.ClgeomDeviceInfo](unsafe.Pointer(arr), n) {
		cFree(dev.device_name)
		cFree(dev.platform_name)
	}
	cFree(arr)
}

// clgeom_create_context_manager enumerates every platform and device and
// returns a manager owning the snapshot. Generally only one is created per
// session. Deallocate with clgeom_drop_context_manager. On a non-zero error
// code the returned value must not be read, not even its device count: zero
// platforms or zero devices reports EnumerationFailure (1) rather than an
// empty success.
//
//export clgeom_create_context_manager
func clgeom_create_context_manager(errorCode *C.uint32_t) (result C.ClgeomContextManager) {
	code := clgeom.CodeUnset
	defer writeErrorCode(errorCode, &code)
	defer recoverToCode(&code, clgeom.CodeEnumerationFailure)

	mgr, err := clgeom.NewContextManager(cl.Driver{})
	if err != nil {
		klog.Errorf("clgeom_create_context_manager: %v", err)
		code = clgeom.CodeEnumerationFailure
		return
	}
	devices := mgr.Devices()
	arr := marshalDevices(devices)
	if arr == nil {
		if closeErr := mgr.Close(); closeErr != nil {
			klog.Errorf("clgeom_create_context_manager: closing manager after allocation failure: %v", closeErr)
		}
		code = clgeom.CodeAllocationFailure
		return
	}
	result.devices = arr
	result.n_devices = C.size_t(len(devices))
	result.manager = C.uintptr_t(registerHandle(mgr))
	code = clgeom.CodeSuccess
	return
}

// clgeom_drop_context_manager releases the device array, its name strings,
// and the native platform resources captured at enumeration time. Call it
// exactly once per successfully created manager, after dropping every context
// created from it. A native release failure is reported through the error
// code, but the caller-side memory is reclaimed regardless.
//
//export clgeom_drop_context_manager
func clgeom_drop_context_manager(mgr C.ClgeomContextManager, errorCode *C.uint32_t) {
	code := clgeom.CodeUnset
	defer writeErrorCode(errorCode, &code)
	defer recoverToCode(&code, clgeom.CodeNativeResourceReleaseFailure)

	code = clgeom.CodeSuccess
	freeDevices(mgr.devices, int(mgr.n_devices))
	if m, ok := takeHandle(uintptr(mgr.manager)).(*clgeom.ContextManager); ok {
		if err := m.Close(); err != nil {
			klog.Errorf("clgeom_drop_context_manager: %v", err)
			code = clgeom.CodeNativeResourceReleaseFailure
		}
	}
}

// clgeom_create_context builds a compute context bound to the given device.
// The device is matched against the manager's snapshot by its native
// identifiers, so the caller may pass a copy of an array entry. Deallocate
// with clgeom_drop_context. On a non-zero error code the returned value is
// unusable and must not be dropped. InvalidDeviceReference (3) reports a
// device the manager does not know; NativeContextCreationFailure (4) reports
// a runtime refusal.
//
//export clgeom_create_context
func clgeom_create_context(mgr *C.ClgeomContextManager, dev *C.ClgeomDeviceInfo, errorCode *C.uint32_t) (result C.ClgeomContext) {
	code := clgeom.CodeUnset
	defer writeErrorCode(errorCode, &code)
	defer recoverToCode(&code, clgeom.CodeNativeContextCreationFailure)

	if mgr == nil || dev == nil {
		code = clgeom.CodeInvalidDeviceReference
		return
	}
	m, ok := lookupHandle(uintptr(mgr.manager)).(*clgeom.ContextManager)
	if !ok {
		code = clgeom.CodeInvalidDeviceReference
		return
	}
	ctx, err := m.NewContext(clgeom.DeviceInfo{
		Device:   clgeom.DeviceID(dev.device_id),
		Platform: clgeom.PlatformID(dev.platform_id),
	})
	if err != nil {
		klog.Errorf("clgeom_create_context: %v", err)
		code = codeForCreateContextError(err)
		return
	}
	result.context = C.uintptr_t(registerHandle(ctx))
	code = clgeom.CodeSuccess
	return
}

// clgeom_drop_context releases the native context handle. Call it exactly
// once per successfully created context; dropping a failed-to-create value or
// dropping twice is a caller contract violation.
//
//export clgeom_drop_context
func clgeom_drop_context(ctx C.ClgeomContext, errorCode *C.uint32_t) {
	code := clgeom.CodeUnset
	defer writeErrorCode(errorCode, &code)
	defer recoverToCode(&code, clgeom.CodeNativeResourceReleaseFailure)

	code = clgeom.CodeSuccess
	if c, ok := takeHandle(uintptr(ctx.context)).(*clgeom.Context); ok {
		if err := c.Close(); err != nil {
			klog.Errorf("clgeom_drop_context: %v", err)
			code = clgeom.CodeNativeResourceReleaseFailure
		}
	}
}
