// Package clgeom provides a safety-oriented facade over the OpenCL platform
// layer: device discovery and compute-context lifecycle.
//
// A ContextManager is created once per session. It takes a snapshot of every
// platform and device the runtime reports, with device and platform names
// copied into memory the manager owns, so the snapshot stays valid regardless
// of later native calls. Contexts are created from the snapshot and released
// independently; the manager's native resources are retained until the last
// dependent Context is closed, so drop ordering cannot cause a use of freed
// platform state.
//
// The package itself is pure Go and talks to the native runtime through the
// Driver interface. The cl sub-package provides the production Driver backed
// by the OpenCL C API; the capi sub-package exports the whole thing as a
// C-callable shared library (see capi/doc.go).
package clgeom

// Generate the ErrorCode string tables.
//go:generate go tool enumer -type=ErrorCode -trimprefix=Code errcode.go
