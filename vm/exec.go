package vm

// execute dispatches a decoded instruction to its handler. An opcode
// byte that names nothing in the table is InvalidInstruction.
func (m *Machine) execute(d Decoded) error {
	switch d.Op {
	case OpNOP:
		return m.execNOP(d)
	case OpMOV:
		return m.execMOV(d)
	case OpLOADI:
		return m.execLOADI(d)
	case OpRST:
		return m.execRST(d)
	case OpPUSH:
		return m.execPUSH(d)
	case OpRPUSH:
		return m.execRPUSH(d)
	case OpRPOP:
		return m.execRPOP(d)

	case OpLOAD:
		return m.execLOAD(d)
	case OpLOADR:
		return m.execLOADR(d)
	case OpLOADS:
		return m.execLOADS(d)
	case OpLOADSR:
		return m.execLOADSR(d)
	case OpSTORE:
		return m.execSTORE(d)

	case OpREAD:
		return m.execREAD(d)
	case OpREADC:
		return m.execREADC(d)
	case OpREADS:
		return m.execREADS(d)
	case OpREADCS:
		return m.execREADCS(d)
	case OpWRITE:
		return m.execWRITE(d)
	case OpWRITEC:
		return m.execWRITEC(d)
	case OpWRITES:
		return m.execWRITES(d)
	case OpWRITECS:
		return m.execWRITECS(d)
	case OpCOPY:
		return m.execCOPY(d)
	case OpCOPYC:
		return m.execCOPYC(d)

	case OpJMP:
		return m.execJMP(d)
	case OpJMPR:
		return m.execJMPR(d)
	case OpJZ:
		return m.execJZ(d)
	case OpJZR:
		return m.execJZR(d)
	case OpCALL:
		return m.execCALL(d)
	case OpCALLR:
		return m.execCALLR(d)
	case OpRET:
		return m.execRET(d)
	case OpSYSCALL:
		return m.execSYSCALL(d)

	default:
		return &Fault{Kind: InvalidInstruction, IP: d.IP, Addr: uint64(d.Op)}
	}
}
