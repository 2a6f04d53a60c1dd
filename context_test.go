package clgeom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	drv := twoPlatformDriver()
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)

	ctx, err := mgr.NewContext(mgr.Devices()[0])
	require.NoError(t, err)
	require.Equal(t, mgr.Devices()[0], ctx.Device())

	require.NoError(t, ctx.Close())
	require.NoError(t, mgr.Close())
	require.Len(t, drv.releasedContexts, 1)
	require.Len(t, drv.releasedPlatforms, 1)
}

func TestNewContextMatchesByNativeIdentifiers(t *testing.T) {
	mgr, err := NewContextManager(twoPlatformDriver())
	require.NoError(t, err)

	// A caller-made copy carrying only the native identifiers is a valid
	// reference; the snapshot entry supplies the names.
	ctx, err := mgr.NewContext(DeviceInfo{Device: 0x21, Platform: 0x20})
	require.NoError(t, err)
	require.Equal(t, "NVIDIA GeForce RTX 3080", ctx.Device().Name)

	require.NoError(t, ctx.Close())
	require.NoError(t, mgr.Close())
}

func TestNewContextUnknownDevice(t *testing.T) {
	mgr, err := NewContextManager(twoPlatformDriver())
	require.NoError(t, err)

	_, err = mgr.NewContext(DeviceInfo{Device: 0x99, Platform: 0x20})
	require.ErrorIs(t, err, ErrUnknownDevice)

	// Right device id under the wrong platform id is also not a match.
	_, err = mgr.NewContext(DeviceInfo{Device: 0x21, Platform: 0x10})
	require.ErrorIs(t, err, ErrUnknownDevice)

	require.NoError(t, mgr.Close())
}

func TestNewContextNativeFailure(t *testing.T) {
	drv := twoPlatformDriver()
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)

	drv.createErr = errors.New("CL_DEVICE_NOT_AVAILABLE")
	_, err = mgr.NewContext(mgr.Devices()[0])
	require.ErrorContains(t, err, "creating context")
	require.NotErrorIs(t, err, ErrUnknownDevice)

	require.NoError(t, mgr.Close())
}

func TestTwoContextsIndependent(t *testing.T) {
	drv := twoPlatformDriver()
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)
	device := mgr.Devices()[1]

	first, err := mgr.NewContext(device)
	require.NoError(t, err)
	second, err := mgr.NewContext(device)
	require.NoError(t, err)
	require.NotEqual(t, first.ctx, second.ctx, "Sequential creations must yield independent handles")

	require.NoError(t, first.Close())
	require.Len(t, drv.releasedContexts, 1)
	require.Equal(t, first.Device(), second.Device(), "Closing one context must not affect the other")

	require.NoError(t, second.Close())
	require.Len(t, drv.releasedContexts, 2)
	require.NoError(t, mgr.Close())
}

func TestContextCloseIdempotent(t *testing.T) {
	drv := twoPlatformDriver()
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)

	ctx, err := mgr.NewContext(mgr.Devices()[0])
	require.NoError(t, err)
	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close())
	require.Len(t, drv.releasedContexts, 1, "A second Close must not release again")

	require.NoError(t, mgr.Close())
}

func TestManagerCloseDeferredUntilLastContext(t *testing.T) {
	drv := twoPlatformDriver()
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)

	first, err := mgr.NewContext(mgr.Devices()[0])
	require.NoError(t, err)
	second, err := mgr.NewContext(mgr.Devices()[1])
	require.NoError(t, err)

	// Closing the manager out of order is safe: the platform release waits
	// for the last dependent context.
	require.NoError(t, mgr.Close())
	require.Empty(t, drv.releasedPlatforms)

	require.NoError(t, first.Close())
	require.Empty(t, drv.releasedPlatforms)

	require.NoError(t, second.Close())
	require.Len(t, drv.releasedPlatforms, 1)
	require.Equal(t, []PlatformID{0x10, 0x20}, drv.releasedPlatforms[0])
}

func TestManagerCloseIdempotent(t *testing.T) {
	drv := twoPlatformDriver()
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)
	require.NoError(t, mgr.Close())
	require.NoError(t, mgr.Close())
	require.Len(t, drv.releasedPlatforms, 1)
}

func TestNewContextAfterClose(t *testing.T) {
	mgr, err := NewContextManager(twoPlatformDriver())
	require.NoError(t, err)
	require.NoError(t, mgr.Close())

	_, err = mgr.NewContext(mgr.Devices()[0])
	require.ErrorIs(t, err, ErrManagerClosed)
}

func TestContextReleaseFailureReported(t *testing.T) {
	drv := twoPlatformDriver()
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)

	ctx, err := mgr.NewContext(mgr.Devices()[0])
	require.NoError(t, err)

	drv.releaseErr = errors.New("CL_INVALID_CONTEXT")
	err = ctx.Close()
	require.ErrorContains(t, err, "releasing context")

	// Reported, but the context is spent: a retry must not release again.
	require.NoError(t, ctx.Close())
	require.Len(t, drv.releasedContexts, 1)
	require.NoError(t, mgr.Close())
}

func TestManagerReleaseFailureReported(t *testing.T) {
	drv := twoPlatformDriver()
	drv.releasePlatformsErr = errors.New("CL_OUT_OF_RESOURCES")
	mgr, err := NewContextManager(drv)
	require.NoError(t, err)

	err = mgr.Close()
	require.ErrorContains(t, err, "releasing platform resources")
}

func TestManagerString(t *testing.T) {
	mgr, err := NewContextManager(twoPlatformDriver())
	require.NoError(t, err)
	require.Equal(t, "ContextManager(2 platforms, 3 devices)", mgr.String())

	ctx, err := mgr.NewContext(mgr.Devices()[0])
	require.NoError(t, err)
	require.Equal(t, "Context(Intel(R) Iris(R) Xe Graphics (Intel(R) OpenCL Graphics))", ctx.String())
	require.NoError(t, ctx.Close())
	require.Equal(t, "Context(closed)", ctx.String())
	require.NoError(t, mgr.Close())
}
