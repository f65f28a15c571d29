package vm

// Opcode identifies a single-byte instruction mnemonic. Operand layout
// for each opcode is noted beside its constant below.
type Opcode uint8

const (
	// ===== Data movement =====
	OpNOP   Opcode = 0x00 // no effect
	OpMOV   Opcode = 0x01 // t:reg ← s:reg
	OpLOADI Opcode = 0x02 // t:reg, sz:u32, v:sz bytes (variable length)
	OpRST   Opcode = 0x03 // t:reg ← 0
	OpPUSH  Opcode = 0x04 // sz:u32, v:sz bytes (variable length)
	OpRPUSH Opcode = 0x05 // s:reg
	OpRPOP  Opcode = 0x06 // t:reg, sz:u32

	// ===== Frame-relative (offsets signed, added to FP) =====
	OpLOAD   Opcode = 0x10 // t:reg, sz:u32, off:i64
	OpLOADR  Opcode = 0x11 // t:reg, sz:u32, off_reg:reg
	OpLOADS  Opcode = 0x12 // sz:u32, off:i64
	OpLOADSR Opcode = 0x13 // sz:u32, off_reg:reg
	OpSTORE  Opcode = 0x14 // off:i64, s:reg

	// ===== Absolute memory =====
	OpREAD   Opcode = 0x20 // t:reg, s:reg
	OpREADC  Opcode = 0x21 // t:reg, a:u64
	OpREADS  Opcode = 0x22 // sz:u32, s:reg
	OpREADCS Opcode = 0x23 // sz:u32, a:u64
	OpWRITE   Opcode = 0x24 // t:reg, s:reg
	OpWRITEC  Opcode = 0x25 // a:u64, s:reg
	OpWRITES  Opcode = 0x26 // t:reg, sz:u32
	OpWRITECS Opcode = 0x27 // a:u64, sz:u32
	OpCOPY    Opcode = 0x28 // t:reg, sz:u32, s:reg
	OpCOPYC   Opcode = 0x29 // t:u64, sz:u32, s:u64

	// ===== Control flow =====
	OpJMP     Opcode = 0x30 // a:u64
	OpJMPR    Opcode = 0x31 // r:reg
	OpJZ      Opcode = 0x32 // a:u64
	OpJZR     Opcode = 0x33 // r:reg
	OpCALL    Opcode = 0x34 // a:u64
	OpCALLR   Opcode = 0x35 // r:reg
	OpRET     Opcode = 0x36
	OpSYSCALL Opcode = 0x37
)

// instructionLength holds the fixed total byte length (opcode included)
// for every opcode except OpLOADI and OpPUSH, whose length depends on an
// embedded u32 size field and is computed by Decode instead.
var instructionLength = map[Opcode]int{
	OpNOP:   1,
	OpMOV:   3,
	OpRST:   2,
	OpRPUSH: 2,
	OpRPOP:  6,

	OpLOAD:   14,
	OpLOADR:  7,
	OpLOADS:  13,
	OpLOADSR: 6,
	OpSTORE:  10,

	OpREAD:    3,
	OpREADC:   10,
	OpREADS:   6,
	OpREADCS:  13,
	OpWRITE:   3,
	OpWRITEC:  10,
	OpWRITES:  6,
	OpWRITECS: 13,
	OpCOPY:    7,
	OpCOPYC:   21,

	OpJMP:     9,
	OpJMPR:    2,
	OpJZ:      9,
	OpJZR:     2,
	OpCALL:    9,
	OpCALLR:   2,
	OpRET:     1,
	OpSYSCALL: 1,
}

// mnemonics is used by disasm.go to render a readable listing.
var mnemonics = map[Opcode]string{
	OpNOP: "NOP", OpMOV: "MOV", OpLOADI: "LOADI", OpRST: "RST",
	OpPUSH: "PUSH", OpRPUSH: "RPUSH", OpRPOP: "RPOP",
	OpLOAD: "LOAD", OpLOADR: "LOADR", OpLOADS: "LOADS", OpLOADSR: "LOADSR", OpSTORE: "STORE",
	OpREAD: "READ", OpREADC: "READC", OpREADS: "READS", OpREADCS: "READCS",
	OpWRITE: "WRITE", OpWRITEC: "WRITEC", OpWRITES: "WRITES", OpWRITECS: "WRITECS",
	OpCOPY: "COPY", OpCOPYC: "COPYC",
	OpJMP: "JMP", OpJMPR: "JMPR", OpJZ: "JZ", OpJZR: "JZR",
	OpCALL: "CALL", OpCALLR: "CALLR", OpRET: "RET", OpSYSCALL: "SYSCALL",
}

func (op Opcode) String() string {
	if m, ok := mnemonics[op]; ok {
		return m
	}
	return "UNKNOWN"
}

// Syscall ids, part of the stable ABI (spec.md §6).
const (
	SyscallExit     uint16 = 0
	SyscallDebugger uint16 = 1
	SyscallGrow     uint16 = 2
)
