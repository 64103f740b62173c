package boundary

import (
	"fmt"
	"unsafe"
)

// MaxViewLen bounds the length of any region the boundary will dereference.
const MaxViewLen = 1 << 20

// View is a (pointer, length) pair describing a host-owned byte region.
//
// A View carries no ownership: the region must stay valid and must not be
// mutated by anyone else for the duration of the call it is passed to.
type View struct {
	Ptr unsafe.Pointer
	Len uint32
}

// ViewOf returns a View aliasing b.  An empty slice yields the zero View.
func ViewOf(b []byte) View {
	if len(b) == 0 {
		return View{}
	}
	return View{Ptr: unsafe.Pointer(unsafe.SliceData(b)), Len: uint32(len(b))}
}

// Bytes returns a slice aliasing the region.  The slice must not be retained
// after the call that received the View returns.
func (v View) Bytes() ([]byte, error) {
	if v.Len == 0 {
		return nil, nil
	}
	if v.Ptr == nil {
		return nil, ErrNilView
	}
	if v.Len > MaxViewLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrViewTooLarge, v.Len, MaxViewLen)
	}
	return unsafe.Slice((*byte)(v.Ptr), v.Len), nil
}
