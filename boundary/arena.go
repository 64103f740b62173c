package boundary

import (
	"sync"
	"unsafe"
)

// Arena hands out host-addressable regions and keeps them reachable until
// they are released.  The Go heap owns the module's linear memory, so hosts
// must obtain input regions here rather than writing at arbitrary offsets.
//
// Arena is safe for concurrent use.
type Arena struct {
	mu   sync.Mutex
	live map[unsafe.Pointer][]byte
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{live: make(map[unsafe.Pointer][]byte)}
}

// Alloc returns the address of a zeroed region of size bytes.  It returns nil
// for a zero size or a size above [MaxViewLen].
func (a *Arena) Alloc(size uint32) unsafe.Pointer {
	if size == 0 || size > MaxViewLen {
		return nil
	}
	b := make([]byte, size)
	p := unsafe.Pointer(unsafe.SliceData(b))

	a.mu.Lock()
	defer a.mu.Unlock()
	a.live[p] = b
	return p
}

// Free wipes and releases a region returned by [Arena.Alloc].  It reports
// false when p is unknown.
func (a *Arena) Free(p unsafe.Pointer) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.live[p]
	if !ok {
		return false
	}
	clear(b)
	delete(a.live, p)
	return true
}

// Live returns the number of regions not yet freed.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}
