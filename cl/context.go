package cl

/*
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
	"unsafe"

	clgeom "github.com/anderslreed/libclgeom"
	"k8s.io/klog/v2"
)

func contextC(ctx clgeom.ContextHandle) C.cl_context {
	return C.cl_context(unsafe.Pointer(uintptr(ctx)))
}

func queueC(queue clgeom.CommandQueue) C.cl_command_queue {
	return C.cl_command_queue(unsafe.Pointer(uintptr(queue)))
}

// CreateContext builds an OpenCL context scoped to one device, plus the
// command queue later compute work would be enqueued on. If the queue cannot
// be created the context is released again before returning.
func (Driver) CreateContext(platform clgeom.PlatformID, device clgeom.DeviceID) (clgeom.ContextHandle, clgeom.CommandQueue, error) {
	props := [3]C.cl_context_properties{
		C.CL_CONTEXT_PLATFORM,
		C.cl_context_properties(platform),
		0,
	}
	dev := deviceC(device)
	var status C.cl_int
	ctx := C.clCreateContext(&props[0], 1, &dev, nil, nil, &status)
	if status != C.CL_SUCCESS {
		return 0, 0, statusError("clCreateContext", status)
	}
	queue := C.clCreateCommandQueue(ctx, dev, 0, &status)
	if status != C.CL_SUCCESS {
		if relStatus := C.clReleaseContext(ctx); relStatus != C.CL_SUCCESS {
			klog.Errorf("clReleaseContext failed while unwinding a queue-creation failure: %v",
				statusError("clReleaseContext", relStatus))
		}
		return 0, 0, statusError("clCreateCommandQueue", status)
	}
	return clgeom.ContextHandle(uintptr(unsafe.Pointer(ctx))),
		clgeom.CommandQueue(uintptr(unsafe.Pointer(queue))), nil
}

// ReleaseContext releases the command queue and then the context. Both
// releases are attempted; the first failure is reported.
func (Driver) ReleaseContext(ctx clgeom.ContextHandle, queue clgeom.CommandQueue) error {
	var err error
	if queue != 0 {
		if status := C.clReleaseCommandQueue(queueC(queue)); status != C.CL_SUCCESS {
			err = statusError("clReleaseCommandQueue", status)
		}
	}
	if ctx != 0 {
		if status := C.clReleaseContext(contextC(ctx)); status != C.CL_SUCCESS && err == nil {
			err = statusError("clReleaseContext", status)
		}
	}
	return err
}
