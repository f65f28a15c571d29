package vm

// Jumps, calls and returns write IP directly (JZ/JZR only when the
// branch is taken), which the cycle loop detects to skip its own
// length-based advance. NOP and SYSCALL leave IP alone.

func (m *Machine) execNOP(d Decoded) error {
	return nil
}

func (m *Machine) execJMP(d Decoded) error {
	target, err := m.mem.ReadUint(d.IP+1, 8)
	if err != nil {
		return err
	}
	return m.regs.WriteUint64(IP, 8, target)
}

func (m *Machine) execJMPR(d Decoded) error {
	target, err := m.readRegOperand(d.IP + 1)
	if err != nil {
		return err
	}
	return m.regs.WriteUint64(IP, 8, target)
}

func (m *Machine) execJZ(d Decoded) error {
	zero, err := m.zeroFlagSet()
	if err != nil {
		return err
	}
	if !zero {
		return nil
	}
	target, err := m.mem.ReadUint(d.IP+1, 8)
	if err != nil {
		return err
	}
	return m.regs.WriteUint64(IP, 8, target)
}

func (m *Machine) execJZR(d Decoded) error {
	zero, err := m.zeroFlagSet()
	if err != nil {
		return err
	}
	if !zero {
		return nil
	}
	target, err := m.readRegOperand(d.IP + 1)
	if err != nil {
		return err
	}
	return m.regs.WriteUint64(IP, 8, target)
}

func (m *Machine) execCALL(d Decoded) error {
	target, err := m.mem.ReadUint(d.IP+1, 8)
	if err != nil {
		return err
	}
	return m.call(d, target)
}

func (m *Machine) execCALLR(d Decoded) error {
	target, err := m.readRegOperand(d.IP + 1)
	if err != nil {
		return err
	}
	return m.call(d, target)
}

func (m *Machine) call(d Decoded, target uint64) error {
	if err := m.pushFrame(d.IP + uint64(d.Length)); err != nil {
		return err
	}
	return m.regs.WriteUint64(IP, 8, target)
}

func (m *Machine) execRET(d Decoded) error {
	return m.popFrame()
}

func (m *Machine) execSYSCALL(d Decoded) error {
	return m.handleSyscall()
}

func (m *Machine) zeroFlagSet() (bool, error) {
	flags, err := m.regs.ReadUint64(FLAGS, 1)
	if err != nil {
		return false, err
	}
	return flags&ZeroFlag != 0, nil
}

// readRegOperand reads a RegByte operand at addr and returns the value
// of the register it names, zero-extended, at the width it encodes.
func (m *Machine) readRegOperand(addr uint64) (uint64, error) {
	raw, err := m.mem.Read(addr, 1)
	if err != nil {
		return 0, err
	}
	rb := RegByte(raw[0])
	return m.regs.ReadUint64(rb.Code(), rb.Width())
}
