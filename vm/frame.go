package vm

import "encoding/binary"

// The calling convention is entirely stack-resident. Before CALL, the
// caller pushes, low to high: a return-value slot of whatever width the
// callee is expected to fill in, the argument bytes themselves, and a
// u32 byte count of those arguments. CALL then records frame_base as
// the current SP (the address the bytecount sits just below), pushes
// the caller's FP followed by a return address, and sets FP to
// frame_base. Frame-relative LOAD/STORE address locals with positive
// offsets from FP; the argument bytecount sits at [FP-4, FP), the
// arguments and return-value slot below that with more negative ones.
//
// RET walks the linkage forward from FP: saved FP lives at [FP, FP+8),
// the return address at [FP+8, FP+16), and the argument byte count at
// [FP-4, FP). It restores FP and IP from those, then sets SP to land
// exactly on top of the return-value slot — discarding the byte count
// and the arguments in one step while leaving whatever the callee
// wrote into the return-value slot as the new stack top.

// pushFrame records frame_base as the current SP, sets FP to it, then
// pushes the saved FP and the return address above the frame base.
func (m *Machine) pushFrame(returnAddr uint64) error {
	savedFP, err := m.regs.ReadUint64(FP, 8)
	if err != nil {
		return err
	}
	frameBase, err := m.regs.ReadUint64(SP, 8)
	if err != nil {
		return err
	}
	if err := m.regs.WriteUint64(FP, 8, frameBase); err != nil {
		return err
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], savedFP)
	if err := m.stack.Push(buf[:]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf[:], returnAddr)
	return m.stack.Push(buf[:])
}

// popFrame restores SP, FP and IP from the current frame's linkage and
// argument byte count, per the convention documented above.
func (m *Machine) popFrame() error {
	fp, err := m.regs.ReadUint64(FP, 8)
	if err != nil {
		return err
	}
	savedFP, err := m.mem.ReadUint(fp, 8)
	if err != nil {
		return err
	}
	retAddr, err := m.mem.ReadUint(fp+8, 8)
	if err != nil {
		return err
	}
	argBytes, err := m.mem.ReadUint(fp-4, 4)
	if err != nil {
		return err
	}
	newSP := fp - 4 - argBytes
	if err := m.regs.WriteUint64(SP, 8, newSP); err != nil {
		return err
	}
	if err := m.regs.WriteUint64(FP, 8, savedFP); err != nil {
		return err
	}
	return m.regs.WriteUint64(IP, 8, retAddr)
}
