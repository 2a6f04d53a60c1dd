package main

import (
	"testing"

	clgeom "github.com/anderslreed/libclgeom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestHandleRegistry(t *testing.T) {
	before := handleCount()

	type thing struct{ n int }
	a := &thing{n: 1}
	b := &thing{n: 2}

	ha := registerHandle(a)
	hb := registerHandle(b)
	require.NotZero(t, ha)
	require.NotEqual(t, ha, hb)
	require.Equal(t, before+2, handleCount())

	require.Same(t, a, lookupHandle(ha))
	require.Same(t, b, lookupHandle(hb))

	require.Same(t, a, takeHandle(ha))
	require.Nil(t, takeHandle(ha), "a taken handle must not resolve again")
	require.Nil(t, lookupHandle(ha))
	require.Equal(t, before+1, handleCount())

	require.Same(t, b, takeHandle(hb))
	require.Equal(t, before, handleCount())
}

func TestHandleRegistryNeverReturnsZero(t *testing.T) {
	// 0 is the "no object" value in the flat structs, so it must never be
	// handed out as a token.
	for i := 0; i < 100; i++ {
		h := registerHandle(i)
		require.NotZero(t, h)
		takeHandle(h)
	}
	require.Nil(t, lookupHandle(0))
	require.Nil(t, takeHandle(0))
}

func TestCodeForCreateContextError(t *testing.T) {
	require.Equal(t, clgeom.CodeInvalidDeviceReference,
		codeForCreateContextError(clgeom.ErrUnknownDevice))
	require.Equal(t, clgeom.CodeInvalidDeviceReference,
		codeForCreateContextError(errors.WithMessage(clgeom.ErrUnknownDevice, "device 0x1 on platform 0x2")))
	require.Equal(t, clgeom.CodeNativeContextCreationFailure,
		codeForCreateContextError(errors.New("CL_DEVICE_NOT_AVAILABLE")))
}
