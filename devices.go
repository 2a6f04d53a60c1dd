package clgeom

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// ErrNoPlatforms reports that the native runtime listed no platforms at
	// all. Treated as an enumeration failure, not an empty success: with no
	// platform there is nothing a caller could ever create a context on.
	ErrNoPlatforms = errors.New("no compute platforms found")

	// ErrNoDevices reports that the platforms listed no devices between them.
	ErrNoDevices = errors.New("no compute devices found")

	// ErrUnknownDevice reports a DeviceInfo whose native identifiers match no
	// entry in the manager's snapshot.
	ErrUnknownDevice = errors.New("device is not part of this manager")

	// ErrManagerClosed reports a call on a manager after Close.
	ErrManagerClosed = errors.New("ContextManager already closed")
)

// DeviceInfo describes one discovered compute device. The names are copied
// out of the native runtime at enumeration time and owned by Go, so they
// remain valid for the lifetime of the ContextManager that produced them.
type DeviceInfo struct {
	// Name is the human-readable device name, e.g. "Tesla V100-SXM2-16GB".
	Name string

	// PlatformName is the name of the platform the device belongs to.
	PlatformName string

	// Device is the native device identifier.
	Device DeviceID

	// Platform is the native identifier of the owning platform.
	Platform PlatformID
}

// String implements fmt.Stringer.
func (d DeviceInfo) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.PlatformName)
}

// enumerateDevices snapshots every device of every platform, in platform
// order then device order within each platform. The ordering is whatever the
// runtime reports, which OpenCL keeps stable for fixed machine state, so
// repeated enumerations see identical lists.
//
// A failed device-name query fails the whole enumeration: the contract is
// that every device in a successful snapshot has a usable non-empty name.
// A failed platform-name query is reported but not fatal, since the platform
// id -- which is what context creation needs -- is already in hand.
func enumerateDevices(drv Driver) (devices []DeviceInfo, platforms []PlatformID, err error) {
	platforms, err = drv.Platforms()
	if err != nil {
		return nil, nil, errors.WithMessage(err, "listing compute platforms")
	}
	if len(platforms) == 0 {
		return nil, nil, ErrNoPlatforms
	}
	for _, platform := range platforms {
		platformName, nameErr := drv.PlatformName(platform)
		if nameErr != nil {
			klog.Errorf("Failed to read name of platform %#x: %v", uintptr(platform), nameErr)
			platformName = "(unknown platform)"
		}
		ids, devErr := drv.PlatformDevices(platform)
		if devErr != nil {
			return nil, nil, errors.WithMessagef(devErr, "listing devices of platform %q", platformName)
		}
		for _, id := range ids {
			name, devNameErr := drv.DeviceName(id)
			if devNameErr != nil {
				return nil, nil, errors.WithMessagef(devNameErr,
					"reading name of device %#x on platform %q", uintptr(id), platformName)
			}
			devices = append(devices, DeviceInfo{
				Name:         name,
				PlatformName: platformName,
				Device:       id,
				Platform:     platform,
			})
		}
	}
	if len(devices) == 0 {
		return nil, nil, ErrNoDevices
	}
	return devices, platforms, nil
}
