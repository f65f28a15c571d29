package vm

import "encoding/binary"

// Frame-relative opcodes address memory by a signed offset from FP,
// operands read straight out of the instruction stream that follows
// the opcode byte at d.IP.

func frameAddr(fp uint64, offset int64) uint64 {
	return uint64(int64(fp) + offset)
}

func (m *Machine) fp() (uint64, error) {
	return m.regs.ReadUint64(FP, 8)
}

func (m *Machine) execLOAD(d Decoded) error {
	rb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+2, 4)
	if err != nil {
		return err
	}
	off, err := m.readOffset(d.IP + 6)
	if err != nil {
		return err
	}
	fp, err := m.fp()
	if err != nil {
		return err
	}
	b, err := m.mem.Read(frameAddr(fp, off), int(sz))
	if err != nil {
		return err
	}
	return m.regs.Write(rb.Code(), rb.Width(), b)
}

func (m *Machine) execLOADR(d Decoded) error {
	rb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+2, 4)
	if err != nil {
		return err
	}
	off, err := m.readOffsetReg(d.IP + 6)
	if err != nil {
		return err
	}
	fp, err := m.fp()
	if err != nil {
		return err
	}
	b, err := m.mem.Read(frameAddr(fp, off), int(sz))
	if err != nil {
		return err
	}
	return m.regs.Write(rb.Code(), rb.Width(), b)
}

func (m *Machine) execLOADS(d Decoded) error {
	sz, err := m.mem.ReadUint(d.IP+1, 4)
	if err != nil {
		return err
	}
	off, err := m.readOffset(d.IP + 5)
	if err != nil {
		return err
	}
	fp, err := m.fp()
	if err != nil {
		return err
	}
	b, err := m.mem.Read(frameAddr(fp, off), int(sz))
	if err != nil {
		return err
	}
	return m.stack.Push(b)
}

func (m *Machine) execLOADSR(d Decoded) error {
	sz, err := m.mem.ReadUint(d.IP+1, 4)
	if err != nil {
		return err
	}
	off, err := m.readOffsetReg(d.IP + 5)
	if err != nil {
		return err
	}
	fp, err := m.fp()
	if err != nil {
		return err
	}
	b, err := m.mem.Read(frameAddr(fp, off), int(sz))
	if err != nil {
		return err
	}
	return m.stack.Push(b)
}

func (m *Machine) execSTORE(d Decoded) error {
	off, err := m.readOffset(d.IP + 1)
	if err != nil {
		return err
	}
	rb, err := m.readRegByte(d.IP + 9)
	if err != nil {
		return err
	}
	b, err := m.regs.Read(rb.Code(), rb.Width())
	if err != nil {
		return err
	}
	fp, err := m.fp()
	if err != nil {
		return err
	}
	return m.mem.Write(frameAddr(fp, off), b)
}

func (m *Machine) readRegByte(addr uint64) (RegByte, error) {
	raw, err := m.mem.Read(addr, 1)
	if err != nil {
		return 0, err
	}
	return RegByte(raw[0]), nil
}

// readOffset reads a signed 64-bit frame offset embedded in the
// instruction stream.
func (m *Machine) readOffset(addr uint64) (int64, error) {
	b, err := m.mem.Read(addr, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// readOffsetReg reads a register operand and reinterprets its value as
// a signed frame offset.
func (m *Machine) readOffsetReg(addr uint64) (int64, error) {
	v, err := m.readRegOperand(addr)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
