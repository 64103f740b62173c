package boundary

import "unsafe"

// OutputCapacity is the fixed size of an [OutputBuffer] in bytes.
const OutputCapacity = 256

// OutputBuffer is a single-slot region holding the most recent rendered
// digest.  It is not safe for concurrent use.
type OutputBuffer struct {
	buf [OutputCapacity]byte
}

var shared OutputBuffer

// Shared returns the process-wide output buffer.  Its address is stable for
// the lifetime of the process.
func Shared() *OutputBuffer { return &shared }

// Store overwrites the start of the buffer with rendered and returns the
// number of bytes written.  When rendered does not fit, Store returns 0 and
// leaves the buffer untouched; it never truncates.
func (o *OutputBuffer) Store(rendered []byte) uint32 {
	if len(rendered) > OutputCapacity {
		return 0
	}
	return uint32(copy(o.buf[:], rendered))
}

// Ptr returns the base address of the buffer.
func (o *OutputBuffer) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&o.buf[0])
}

// Bytes returns the first n bytes of the buffer, clamped to its capacity.
func (o *OutputBuffer) Bytes(n uint32) []byte {
	if n > OutputCapacity {
		n = OutputCapacity
	}
	return o.buf[:n]
}
