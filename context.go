package clgeom

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ContextManager holds the device snapshot taken at construction time and
// creates Contexts from it. Generally only one is created per session.
//
// The snapshot is immutable after construction and is not internally
// synchronized; callers that share a manager between goroutines must
// serialize access themselves. The live-context bookkeeping underneath is
// locked only because finalizers may close a leaked Context from the runtime
// goroutine.
type ContextManager struct {
	drv       Driver
	devices   []DeviceInfo
	platforms []PlatformID

	mu           sync.Mutex
	liveContexts int
	closed       bool
}

// NewContextManager enumerates the platforms and devices visible through drv
// and returns a manager owning the snapshot. Zero platforms or zero devices
// is an error (ErrNoPlatforms, ErrNoDevices), never an empty success.
//
// The manager should be released with Close; a finalizer backstops leaked
// managers.
func NewContextManager(drv Driver) (*ContextManager, error) {
	devices, platforms, err := enumerateDevices(drv)
	if err != nil {
		return nil, err
	}
	m := &ContextManager{drv: drv, devices: devices, platforms: platforms}
	runtime.SetFinalizer(m, finalizeContextManager)
	return m, nil
}

func finalizeContextManager(m *ContextManager) {
	if err := m.Close(); err != nil {
		klog.Errorf("ContextManager.Close failed in finalizer: %v", err)
	}
}

// Devices returns the device snapshot in enumeration order: platforms in the
// order the runtime reported them, devices in platform order within each.
// The slice is owned by the manager and must not be modified.
func (m *ContextManager) Devices() []DeviceInfo {
	return m.devices
}

// NewContext creates a compute context bound to the given device. The device
// is matched against the snapshot by its native identifiers, not by slice
// position, so callers may pass a copy.
func (m *ContextManager) NewContext(device DeviceInfo) (*Context, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	m.mu.Unlock()

	found := false
	for _, d := range m.devices {
		if d.Device == device.Device && d.Platform == device.Platform {
			device = d // use the snapshot's copy, with names filled in
			found = true
			break
		}
	}
	if !found {
		return nil, errors.WithMessagef(ErrUnknownDevice,
			"device %#x on platform %#x", uintptr(device.Device), uintptr(device.Platform))
	}

	ctx, queue, err := m.drv.CreateContext(device.Platform, device.Device)
	if err != nil {
		return nil, errors.WithMessagef(err, "creating context for device %q", device.Name)
	}

	m.mu.Lock()
	m.liveContexts++
	m.mu.Unlock()

	c := &Context{mgr: m, device: device, ctx: ctx, queue: queue}
	runtime.SetFinalizer(c, finalizeContext)
	return c, nil
}

// Close releases the manager. If Contexts created from it are still live, the
// native platform resources are retained until the last of them closes -- the
// release then happens on that last Context.Close -- so no drop ordering can
// leave a live Context on freed platform state. Either way the manager
// accepts no further NewContext calls after Close.
//
// Close is idempotent; only the first call can return a release error.
func (m *ContextManager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	last := m.liveContexts == 0
	m.mu.Unlock()
	if !last {
		return nil
	}
	return m.release()
}

// release frees the native platform resources. Called exactly once, when the
// manager is closed and no dependent Context remains.
func (m *ContextManager) release() error {
	runtime.SetFinalizer(m, nil)
	err := m.drv.ReleasePlatforms(m.platforms)
	if err != nil {
		return errors.WithMessage(err, "releasing platform resources")
	}
	return nil
}

// contextClosed is called by Context.Close after the native context has been
// released. It triggers the deferred platform release when the closed
// manager's last context goes away.
func (m *ContextManager) contextClosed() error {
	m.mu.Lock()
	m.liveContexts--
	last := m.closed && m.liveContexts == 0
	m.mu.Unlock()
	if !last {
		return nil
	}
	return m.release()
}

// String implements fmt.Stringer.
func (m *ContextManager) String() string {
	return fmt.Sprintf("ContextManager(%d platforms, %d devices)", len(m.platforms), len(m.devices))
}

// Context wraps one native compute context (and its command queue), bound to
// a single device. It holds its manager alive until closed.
type Context struct {
	mgr    *ContextManager
	device DeviceInfo
	ctx    ContextHandle
	queue  CommandQueue
}

// Device returns the device this context was built for.
func (c *Context) Device() DeviceInfo {
	return c.device
}

// Close releases the native context and queue. Safe to call more than once;
// only the first call releases anything. This is automatically called if the
// Context is garbage collected.
func (c *Context) Close() error {
	if c.mgr == nil {
		// Already closed, no-op.
		return nil
	}
	runtime.SetFinalizer(c, nil)
	mgr := c.mgr
	c.mgr = nil
	err := mgr.drv.ReleaseContext(c.ctx, c.queue)
	c.ctx, c.queue = 0, 0
	if relErr := mgr.contextClosed(); relErr != nil {
		if err == nil {
			err = relErr
		} else {
			klog.Errorf("Deferred platform release failed: %v", relErr)
		}
	}
	if err != nil {
		return errors.WithMessagef(err, "releasing context for device %q", c.device.Name)
	}
	return nil
}

func finalizeContext(c *Context) {
	if err := c.Close(); err != nil {
		klog.Errorf("Context.Close failed in finalizer: %v", err)
	}
}

// String implements fmt.Stringer.
func (c *Context) String() string {
	if c.mgr == nil {
		return "Context(closed)"
	}
	return fmt.Sprintf("Context(%s)", c.device)
}
