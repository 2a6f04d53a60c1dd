// Package cl is a minimal cgo binding to the OpenCL platform layer: platform
// and device enumeration plus context and command-queue lifecycle. It binds
// only the handful of calls the clgeom facade needs, by hand -- there is no
// generated API surface to maintain here.
//
// Linking goes through the OpenCL ICD loader (-lOpenCL), which dispatches to
// whatever vendor runtimes are installed.
package cl

/*
#cgo linux LDFLAGS: -lOpenCL
#cgo windows LDFLAGS: -lOpenCL
#cgo darwin LDFLAGS: -framework OpenCL

#define CL_TARGET_OPENCL_VERSION 120
#define CL_USE_DEPRECATED_OPENCL_1_2_APIS

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
*/
import "C"
import (
	"bytes"
	"unsafe"

	clgeom "github.com/anderslreed/libclgeom"
)

// clPlatformNotFoundKHR is returned by ICD loaders when no vendor runtime is
// installed at all. Treated as "zero platforms", not as a query error.
const clPlatformNotFoundKHR = -1001

// Driver implements clgeom.Driver on top of the OpenCL C API. The zero value
// is ready to use.
type Driver struct{}

var _ clgeom.Driver = Driver{}

func platformC(id clgeom.PlatformID) C.cl_platform_id {
	return C.cl_platform_id(unsafe.Pointer(uintptr(id)))
}

func deviceC(id clgeom.DeviceID) C.cl_device_id {
	return C.cl_device_id(unsafe.Pointer(uintptr(id)))
}

// Platforms lists the available OpenCL platforms.
func (Driver) Platforms() ([]clgeom.PlatformID, error) {
	var count C.cl_uint
	status := C.clGetPlatformIDs(0, nil, &count)
	if status == clPlatformNotFoundKHR {
		return nil, nil
	}
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs", status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]C.cl_platform_id, count)
	if status := C.clGetPlatformIDs(count, &ids[0], nil); status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs", status)
	}
	platforms := make([]clgeom.PlatformID, count)
	for i, id := range ids {
		platforms[i] = clgeom.PlatformID(uintptr(unsafe.Pointer(id)))
	}
	return platforms, nil
}

// PlatformName returns the CL_PLATFORM_NAME string of a platform.
func (Driver) PlatformName(platform clgeom.PlatformID) (string, error) {
	var size C.size_t
	if status := C.clGetPlatformInfo(platformC(platform), C.CL_PLATFORM_NAME, 0, nil, &size); status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo", status)
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size)
	if status := C.clGetPlatformInfo(platformC(platform), C.CL_PLATFORM_NAME, size, unsafe.Pointer(&buf[0]), nil); status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo", status)
	}
	return stringFromInfo(buf), nil
}

// PlatformDevices lists all devices of a platform, of every device type.
func (Driver) PlatformDevices(platform clgeom.PlatformID) ([]clgeom.DeviceID, error) {
	var count C.cl_uint
	status := C.clGetDeviceIDs(platformC(platform), C.CL_DEVICE_TYPE_ALL, 0, nil, &count)
	if status == C.CL_DEVICE_NOT_FOUND {
		return nil, nil
	}
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs", status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]C.cl_device_id, count)
	if status := C.clGetDeviceIDs(platformC(platform), C.CL_DEVICE_TYPE_ALL, count, &ids[0], nil); status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs", status)
	}
	devices := make([]clgeom.DeviceID, count)
	for i, id := range ids {
		devices[i] = clgeom.DeviceID(uintptr(unsafe.Pointer(id)))
	}
	return devices, nil
}

// DeviceName returns the CL_DEVICE_NAME string of a device.
func (Driver) DeviceName(device clgeom.DeviceID) (string, error) {
	var size C.size_t
	if status := C.clGetDeviceInfo(deviceC(device), C.CL_DEVICE_NAME, 0, nil, &size); status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo", status)
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size)
	if status := C.clGetDeviceInfo(deviceC(device), C.CL_DEVICE_NAME, size, unsafe.Pointer(&buf[0]), nil); status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo", status)
	}
	return stringFromInfo(buf), nil
}

// stringFromInfo converts an OpenCL info buffer to a Go string. The reported
// size includes the trailing NUL.
func stringFromInfo(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

// ReleasePlatforms implements clgeom.Driver. OpenCL platform ids are not
// reference counted and root device ids need no release, so there is nothing
// to do; the method exists so the manager's release ordering stays observable
// through the Driver seam.
func (Driver) ReleasePlatforms([]clgeom.PlatformID) error {
	return nil
}
