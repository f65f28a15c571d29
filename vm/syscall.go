package vm

// SYSCALL pops a 16-bit id from the stack and dispatches it. Dispatch
// lives on Machine so handlers can reach registers, memory and the
// debugger hook directly.
func (m *Machine) handleSyscall() error {
	id, err := m.stack.PopUint64(2)
	if err != nil {
		return err
	}

	switch uint16(id) {
	case SyscallExit:
		return m.handleExit()
	case SyscallDebugger:
		return m.handleDebugger()
	case SyscallGrow:
		return m.handleGrow()
	default:
		ip, _ := m.regs.ReadUint64(IP, 8)
		return &Fault{Kind: InvalidSyscall, IP: ip, Addr: id}
	}
}

// handleExit pops a single exit-code byte and clears RUN. The code is
// mirrored into both R0 (spec.md §4.7's literal destination) and EXT
// (the register's documented purpose), so a host can read either.
func (m *Machine) handleExit() error {
	code, err := m.stack.Pop(1)
	if err != nil {
		return err
	}
	if err := m.regs.Write(R0, 1, code); err != nil {
		return err
	}
	if err := m.regs.Write(EXT, 1, code); err != nil {
		return err
	}
	return m.regs.WriteUint64(RUN, 1, 0)
}

// handleDebugger pops an 8-byte argument and invokes the synchronous
// debugger hook, if one is installed. Without a hook this is a no-op.
func (m *Machine) handleDebugger() error {
	arg, err := m.stack.PopUint64(8)
	if err != nil {
		return err
	}
	if m.debuggerHook != nil {
		m.debuggerHook(arg)
	}
	return nil
}

// handleGrow takes no operand and doubles the current memory size.
func (m *Machine) handleGrow() error {
	m.Grow(m.mem.Len() * 2)
	return nil
}
