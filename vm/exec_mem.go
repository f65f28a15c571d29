package vm

// Absolute memory opcodes. A "C" suffix means the address is an
// immediate baked into the instruction stream rather than read from a
// register; an "S" suffix means the value moves through the stack
// rather than a register.

func (m *Machine) execREAD(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	addr, err := m.readRegOperand(d.IP + 2)
	if err != nil {
		return err
	}
	b, err := m.mem.Read(addr, int(tb.Width()))
	if err != nil {
		return err
	}
	return m.regs.Write(tb.Code(), tb.Width(), b)
}

func (m *Machine) execREADC(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	addr, err := m.mem.ReadUint(d.IP+2, 8)
	if err != nil {
		return err
	}
	b, err := m.mem.Read(addr, int(tb.Width()))
	if err != nil {
		return err
	}
	return m.regs.Write(tb.Code(), tb.Width(), b)
}

func (m *Machine) execREADS(d Decoded) error {
	sz, err := m.mem.ReadUint(d.IP+1, 4)
	if err != nil {
		return err
	}
	addr, err := m.readRegOperand(d.IP + 5)
	if err != nil {
		return err
	}
	b, err := m.mem.Read(addr, int(sz))
	if err != nil {
		return err
	}
	return m.stack.Push(b)
}

func (m *Machine) execREADCS(d Decoded) error {
	sz, err := m.mem.ReadUint(d.IP+1, 4)
	if err != nil {
		return err
	}
	addr, err := m.mem.ReadUint(d.IP+5, 8)
	if err != nil {
		return err
	}
	b, err := m.mem.Read(addr, int(sz))
	if err != nil {
		return err
	}
	return m.stack.Push(b)
}

func (m *Machine) execWRITE(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sb, err := m.readRegByte(d.IP + 2)
	if err != nil {
		return err
	}
	addr, err := m.regs.ReadUint64(tb.Code(), tb.Width())
	if err != nil {
		return err
	}
	val, err := m.regs.Read(sb.Code(), sb.Width())
	if err != nil {
		return err
	}
	return m.mem.Write(addr, val)
}

func (m *Machine) execWRITEC(d Decoded) error {
	addr, err := m.mem.ReadUint(d.IP+1, 8)
	if err != nil {
		return err
	}
	sb, err := m.readRegByte(d.IP + 9)
	if err != nil {
		return err
	}
	val, err := m.regs.Read(sb.Code(), sb.Width())
	if err != nil {
		return err
	}
	return m.mem.Write(addr, val)
}

func (m *Machine) execWRITES(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+2, 4)
	if err != nil {
		return err
	}
	addr, err := m.regs.ReadUint64(tb.Code(), tb.Width())
	if err != nil {
		return err
	}
	b, err := m.stack.Pop(int(sz))
	if err != nil {
		return err
	}
	return m.mem.Write(addr, b)
}

func (m *Machine) execWRITECS(d Decoded) error {
	addr, err := m.mem.ReadUint(d.IP+1, 8)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+9, 4)
	if err != nil {
		return err
	}
	b, err := m.stack.Pop(int(sz))
	if err != nil {
		return err
	}
	return m.mem.Write(addr, b)
}

func (m *Machine) execCOPY(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+2, 4)
	if err != nil {
		return err
	}
	sb, err := m.readRegByte(d.IP + 6)
	if err != nil {
		return err
	}
	dst, err := m.regs.ReadUint64(tb.Code(), tb.Width())
	if err != nil {
		return err
	}
	src, err := m.regs.ReadUint64(sb.Code(), sb.Width())
	if err != nil {
		return err
	}
	b, err := m.mem.Read(src, int(sz))
	if err != nil {
		return err
	}
	return m.mem.Write(dst, b)
}

func (m *Machine) execCOPYC(d Decoded) error {
	dst, err := m.mem.ReadUint(d.IP+1, 8)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+9, 4)
	if err != nil {
		return err
	}
	src, err := m.mem.ReadUint(d.IP+13, 8)
	if err != nil {
		return err
	}
	b, err := m.mem.Read(src, int(sz))
	if err != nil {
		return err
	}
	return m.mem.Write(dst, b)
}
