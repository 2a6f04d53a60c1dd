package cl

/*
#define CL_TARGET_OPENCL_VERSION 120

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
*/
import "C"
import (
	"github.com/pkg/errors"
)

// statusError converts a non-success cl_int status to a Go error naming the
// failed call, with a stack trace (see github.com/pkg/errors).
func statusError(call string, status C.cl_int) error {
	return errors.Errorf("OpenCL error %s (%d) in %s", statusName(status), int32(status), call)
}

// statusName returns the symbolic name for the status codes the bound calls
// can report.
func statusName(status C.cl_int) string {
	switch status {
	case C.CL_SUCCESS:
		return "CL_SUCCESS"
	case C.CL_DEVICE_NOT_FOUND:
		return "CL_DEVICE_NOT_FOUND"
	case C.CL_DEVICE_NOT_AVAILABLE:
		return "CL_DEVICE_NOT_AVAILABLE"
	case C.CL_MEM_OBJECT_ALLOCATION_FAILURE:
		return "CL_MEM_OBJECT_ALLOCATION_FAILURE"
	case C.CL_OUT_OF_RESOURCES:
		return "CL_OUT_OF_RESOURCES"
	case C.CL_OUT_OF_HOST_MEMORY:
		return "CL_OUT_OF_HOST_MEMORY"
	case C.CL_INVALID_VALUE:
		return "CL_INVALID_VALUE"
	case C.CL_INVALID_PLATFORM:
		return "CL_INVALID_PLATFORM"
	case C.CL_INVALID_DEVICE_TYPE:
		return "CL_INVALID_DEVICE_TYPE"
	case C.CL_INVALID_DEVICE:
		return "CL_INVALID_DEVICE"
	case C.CL_INVALID_CONTEXT:
		return "CL_INVALID_CONTEXT"
	case C.CL_INVALID_QUEUE_PROPERTIES:
		return "CL_INVALID_QUEUE_PROPERTIES"
	case C.CL_INVALID_COMMAND_QUEUE:
		return "CL_INVALID_COMMAND_QUEUE"
	case C.CL_INVALID_PROPERTY:
		return "CL_INVALID_PROPERTY"
	case clPlatformNotFoundKHR:
		return "CL_PLATFORM_NOT_FOUND_KHR"
	default:
		return "CL_UNKNOWN_ERROR"
	}
}
