package vm

// Decoded is the result of classifying the byte at an instruction
// pointer: its opcode and the total byte length of the instruction
// (including any variable-length payload).
type Decoded struct {
	Op     Opcode
	IP     uint64
	Length int
}

// Decode classifies the opcode at ip and computes the instruction's
// total length. It consults instructionLength for fixed-length opcodes;
// OpLOADI and OpPUSH carry an embedded u32 size field that must be read
// from the instruction stream to compute their length. Decode does not
// itself validate that the opcode byte is known — an unknown byte is
// given length 1 here and is rejected by the Executor instead, per
// spec.md §4.4.
func Decode(mem *Memory, ip uint64) (Decoded, error) {
	raw, err := mem.Read(ip, 1)
	if err != nil {
		return Decoded{}, err
	}
	op := Opcode(raw[0])

	switch op {
	case OpLOADI:
		// opcode(1) + target reg(1) + size(4) + payload(size)
		sz, err := mem.ReadUint(ip+2, 4)
		if err != nil {
			return Decoded{}, err
		}
		return Decoded{Op: op, IP: ip, Length: 1 + 1 + 4 + int(sz)}, nil
	case OpPUSH:
		// opcode(1) + size(4) + payload(size)
		sz, err := mem.ReadUint(ip+1, 4)
		if err != nil {
			return Decoded{}, err
		}
		return Decoded{Op: op, IP: ip, Length: 1 + 4 + int(sz)}, nil
	}

	if l, ok := instructionLength[op]; ok {
		return Decoded{Op: op, IP: ip, Length: l}, nil
	}
	return Decoded{Op: op, IP: ip, Length: 1}, nil
}
