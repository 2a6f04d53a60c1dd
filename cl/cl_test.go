package cl

// These tests talk to the machine's real OpenCL runtime and only run when
// -opencl is set:
//
//	go test ./cl -opencl

import (
	"flag"
	"fmt"
	"testing"

	clgeom "github.com/anderslreed/libclgeom"
	"github.com/stretchr/testify/require"
)

var flagOpenCL = flag.Bool("opencl", false,
	"Run tests against the machine's OpenCL runtime. Requires at least one platform with one device.")

func liveDriver(t *testing.T) Driver {
	if !*flagOpenCL {
		t.Skip("Live OpenCL tests disabled, run with -opencl to enable them.")
	}
	return Driver{}
}

func TestDriver_Platforms(t *testing.T) {
	drv := liveDriver(t)
	platforms, err := drv.Platforms()
	require.NoError(t, err)
	require.NotEmpty(t, platforms, "No OpenCL platforms found -- is an ICD installed?")
	for _, platform := range platforms {
		name, err := drv.PlatformName(platform)
		require.NoError(t, err)
		require.NotEmpty(t, name)
		fmt.Printf("Platform %#x: %s\n", uintptr(platform), name)
	}
}

func TestDriver_PlatformDevices(t *testing.T) {
	drv := liveDriver(t)
	platforms, err := drv.Platforms()
	require.NoError(t, err)
	require.NotEmpty(t, platforms)
	total := 0
	for _, platform := range platforms {
		devices, err := drv.PlatformDevices(platform)
		require.NoError(t, err)
		for _, device := range devices {
			name, err := drv.DeviceName(device)
			require.NoError(t, err)
			require.NotEmpty(t, name)
			fmt.Printf("Device %#x: %s\n", uintptr(device), name)
			total++
		}
	}
	require.NotZero(t, total, "Platforms reported no devices at all")
}

func TestDriver_ContextRoundTrip(t *testing.T) {
	drv := liveDriver(t)
	mgr, err := clgeom.NewContextManager(drv)
	require.NoError(t, err)
	devices := mgr.Devices()
	require.NotEmpty(t, devices)
	fmt.Printf("%s, using device %s\n", mgr, devices[0])

	ctx, err := mgr.NewContext(devices[0])
	require.NoErrorf(t, err, "Failed to create a context on %s", devices[0])
	require.NoError(t, ctx.Close())
	require.NoError(t, mgr.Close())
}

func TestDriver_CreateContextInvalidDevice(t *testing.T) {
	drv := liveDriver(t)
	_, _, err := drv.CreateContext(0, 0)
	require.Error(t, err, "clCreateContext with nil device should fail")
	fmt.Printf("Received expected error: %v\n", err)
}
