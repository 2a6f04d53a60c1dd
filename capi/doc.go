// The capi program builds as a C shared library exporting the libclgeom API:
// compute-device discovery and context lifecycle behind a crash-free,
// out-parameter error protocol.
//
// Build with:
//
//	go build -buildmode=c-shared -o libclgeom.so ./capi
//
// The Go toolchain generates the matching header next to the library; a
// build-time post-processing step strips the unneeded standard-library
// includes from it. The struct shapes themselves live in clgeom_types.h so
// they appear verbatim in the generated header.
//
// Contract, for every exported function: the caller initializes the uint32_t
// error slot to the unset sentinel (100) before the call; after the call, 0
// means success and any other value names the failure kind. On failure the
// returned value must not be used and must not be passed to a drop function.
// Callers drop every ClgeomContext before dropping the ClgeomContextManager
// it came from, and drop each value exactly once.
package main

func main() {} // required by -buildmode=c-shared, never called
