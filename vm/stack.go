package vm

import "encoding/binary"

// Stack is the push/pop/peek engine built on top of Memory and the SP
// register. The stack lives in the region [executable_size, SP) of M: SP
// points to the first free byte above the stack top. Pushes write at SP
// then advance it by the payload size; pops decrement SP first, then
// read. The stack grows toward higher addresses.
//
// Underflow is not checked here; an SP that has wandered below zero or
// above |M| surfaces as an IllegalMemoryAccess on the next read or write
// that actually crosses the bound, per spec.md §4.3.
type Stack struct {
	mem *Memory
	reg *RegisterFile
}

// NewStack builds a Stack engine over mem, manipulating reg's SP slot.
func NewStack(mem *Memory, reg *RegisterFile) *Stack {
	return &Stack{mem: mem, reg: reg}
}

func (s *Stack) sp() (uint64, error) {
	return s.reg.ReadUint64(SP, 8)
}

func (s *Stack) setSP(v uint64) error {
	return s.reg.WriteUint64(SP, 8, v)
}

// Push writes b at SP and advances SP by len(b).
func (s *Stack) Push(b []byte) error {
	sp, err := s.sp()
	if err != nil {
		return err
	}
	if err := s.mem.Write(sp, b); err != nil {
		return err
	}
	return s.setSP(sp + uint64(len(b)))
}

// Peek reads w bytes ending at SP (i.e. starting at SP-w) without
// changing SP.
func (s *Stack) Peek(w int) ([]byte, error) {
	sp, err := s.sp()
	if err != nil {
		return nil, err
	}
	addr := sp - uint64(w)
	return s.mem.Read(addr, w)
}

// Pop decrements SP by w, then reads the w bytes now at the new SP.
func (s *Stack) Pop(w int) ([]byte, error) {
	b, err := s.Peek(w)
	if err != nil {
		return nil, err
	}
	sp, err := s.sp()
	if err != nil {
		return nil, err
	}
	if err := s.setSP(sp - uint64(w)); err != nil {
		return nil, err
	}
	return b, nil
}

// PopUint64 pops w bytes and zero-extends them to a uint64.
func (s *Stack) PopUint64(w int) (uint64, error) {
	b, err := s.Pop(w)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:]), nil
}
