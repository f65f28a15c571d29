package vm

import "encoding/binary"

// Memory is a single contiguous byte buffer. All addresses are absolute
// byte offsets in [0, len(M)). A typed read/write of width w at address a
// touches bytes [a, a+w) in little-endian order.
type Memory struct {
	buf []byte
}

// NewMemory allocates a zero-initialized buffer of the given size.
func NewMemory(size int) *Memory {
	return &Memory{buf: make([]byte, size)}
}

// Len returns |M|, the current buffer size.
func (m *Memory) Len() int {
	return len(m.buf)
}

// Bytes exposes the backing buffer directly; callers must not retain it
// across a Grow, which may reallocate.
func (m *Memory) Bytes() []byte {
	return m.buf
}

func (m *Memory) bounds(a uint64, w int) error {
	if a > uint64(len(m.buf)) || uint64(len(m.buf))-a < uint64(w) {
		return &Fault{Kind: IllegalMemoryAccess, Addr: a}
	}
	return nil
}

// Write copies b into M starting at a, after bounds-checking
// [a, a+len(b)) against |M|.
func (m *Memory) Write(a uint64, b []byte) error {
	if err := m.bounds(a, len(b)); err != nil {
		return err
	}
	copy(m.buf[a:], b)
	return nil
}

// WriteUint writes value's low width bytes in little-endian order at a.
func (m *Memory) WriteUint(a uint64, width int, value uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return m.Write(a, buf[:width])
}

// Read returns a copy of the w bytes at [a, a+w), after bounds-checking.
func (m *Memory) Read(a uint64, w int) ([]byte, error) {
	if err := m.bounds(a, w); err != nil {
		return nil, err
	}
	out := make([]byte, w)
	copy(out, m.buf[a:a+uint64(w)])
	return out, nil
}

// ReadUint reads width bytes at a, zero-extended to 64 bits.
func (m *Memory) ReadUint(a uint64, width int) (uint64, error) {
	b, err := m.Read(a, width)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Grow adopts a new zero-initialized buffer of size n if n > |M|,
// copying over the existing contents; existing addresses remain valid
// with identical contents. A request with n <= |M| is a no-op.
func (m *Memory) Grow(n int) {
	if n <= len(m.buf) {
		return
	}
	grown := make([]byte, n)
	copy(grown, m.buf)
	m.buf = grown
}

// Reset zeroes every byte without changing |M|.
func (m *Memory) Reset() {
	for i := range m.buf {
		m.buf[i] = 0
	}
}
