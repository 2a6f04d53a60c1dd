package main

import "sync"

// C callers hold managers and contexts as opaque uintptr tokens: Go pointers
// must not be stored in C memory, so each Go object is parked in this table
// and referenced by id. The table is mutex-guarded because distinct managers
// may legitimately be used from distinct threads; access to any one manager
// or context is still the caller's to serialize.

var (
	handlesMu   sync.Mutex
	handleTable         = make(map[uintptr]any)
	nextHandle  uintptr = 1
)

// registerHandle parks v and returns the token to hand to C. Never returns 0,
// so 0 stays available as the "no object" value in the flat structs.
func registerHandle(v any) uintptr {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	id := nextHandle
	nextHandle++
	handleTable[id] = v
	return id
}

// lookupHandle returns the object parked under id, or nil.
func lookupHandle(id uintptr) any {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return handleTable[id]
}

// takeHandle removes and returns the object parked under id, or nil. Used by
// the drop functions so a token cannot resolve after its object is released.
func takeHandle(id uintptr) any {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	v := handleTable[id]
	delete(handleTable, id)
	return v
}

// handleCount reports the number of live handles. Test hook.
func handleCount() int {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return len(handleTable)
}
