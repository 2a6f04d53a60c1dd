package clgeom

// The native runtime hands out several kinds of opaque identifiers, all
// pointer-sized integers on the wire, so each gets its own marker type: a
// PlatformID accidentally passed where a DeviceID belongs becomes a compile
// error instead of a native-runtime crash.

// PlatformID identifies a native platform (a vendor/driver instance that owns
// a set of devices). Opaque: only ever handed back to the runtime.
type PlatformID uintptr

// DeviceID identifies a single compute device under a platform. Opaque.
type DeviceID uintptr

// ContextHandle is a native compute-context handle. Opaque.
type ContextHandle uintptr

// CommandQueue is a native command-queue handle. A queue is created together
// with its context and released with it. Opaque.
type CommandQueue uintptr

// Driver is the slice of the native runtime that the snapshot builder and the
// context lifecycle depend on. The production implementation is cl.Driver;
// tests substitute deterministic fakes.
//
// Every method is synchronous and may be called only from one goroutine at a
// time, matching the guarantees this package itself gives.
type Driver interface {
	// Platforms lists the native platforms. An empty result with a nil error
	// means the runtime is present but reports no platforms.
	Platforms() ([]PlatformID, error)

	// PlatformName returns the human-readable name of a platform.
	PlatformName(platform PlatformID) (string, error)

	// PlatformDevices lists the devices of one platform, in the runtime's
	// order. An empty result with a nil error means the platform has no
	// devices.
	PlatformDevices(platform PlatformID) ([]DeviceID, error)

	// DeviceName returns the human-readable name of a device.
	DeviceName(device DeviceID) (string, error)

	// CreateContext builds a compute context scoped to the given device, plus
	// its command queue. On error neither handle is valid.
	CreateContext(platform PlatformID, device DeviceID) (ContextHandle, CommandQueue, error)

	// ReleaseContext releases a context and its queue exactly once.
	ReleaseContext(ctx ContextHandle, queue CommandQueue) error

	// ReleasePlatforms releases whatever per-platform resources the runtime
	// requires to be held while contexts exist. Called once, after the
	// manager is closed and its last dependent context is gone.
	ReleasePlatforms(platforms []PlatformID) error
}
