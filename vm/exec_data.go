package vm

// Data-movement opcodes: register-to-register moves, immediate loads,
// register clears, and the plain (non-frame, non-address) stack ops.

func (m *Machine) execMOV(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sb, err := m.readRegByte(d.IP + 2)
	if err != nil {
		return err
	}
	val, err := m.regs.Read(sb.Code(), sb.Width())
	if err != nil {
		return err
	}
	return m.regs.Write(tb.Code(), tb.Width(), val)
}

func (m *Machine) execLOADI(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+2, 4)
	if err != nil {
		return err
	}
	v, err := m.mem.Read(d.IP+6, int(sz))
	if err != nil {
		return err
	}
	return m.regs.Write(tb.Code(), tb.Width(), v)
}

func (m *Machine) execRST(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	return m.regs.Write(tb.Code(), tb.Width(), nil)
}

func (m *Machine) execPUSH(d Decoded) error {
	sz, err := m.mem.ReadUint(d.IP+1, 4)
	if err != nil {
		return err
	}
	v, err := m.mem.Read(d.IP+5, int(sz))
	if err != nil {
		return err
	}
	return m.stack.Push(v)
}

func (m *Machine) execRPUSH(d Decoded) error {
	sb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	val, err := m.regs.Read(sb.Code(), sb.Width())
	if err != nil {
		return err
	}
	return m.stack.Push(val)
}

func (m *Machine) execRPOP(d Decoded) error {
	tb, err := m.readRegByte(d.IP + 1)
	if err != nil {
		return err
	}
	sz, err := m.mem.ReadUint(d.IP+2, 4)
	if err != nil {
		return err
	}
	b, err := m.stack.Pop(int(sz))
	if err != nil {
		return err
	}
	return m.regs.Write(tb.Code(), tb.Width(), b)
}
