// Package vm implements the register+stack bytecode virtual machine: its
// memory and register model, instruction decoding and dispatch, the calling
// convention, the syscall surface, and the fetch/execute cycle loop.
package vm

import "encoding/binary"

// RegisterCount is the number of addressable register slots.
const RegisterCount = 64

// Named special registers. Codes 17..63 are plain unnamed general-purpose
// slots addressed the same way as R0..R9.
const (
	R0 uint8 = 0
	R1 uint8 = 1
	R2 uint8 = 2
	R3 uint8 = 3
	R4 uint8 = 4
	R5 uint8 = 5
	R6 uint8 = 6
	R7 uint8 = 7
	R8 uint8 = 8
	R9 uint8 = 9

	AX    uint8 = 10 // return value
	IP    uint8 = 11 // instruction pointer
	SP    uint8 = 12 // stack pointer
	FP    uint8 = 13 // frame pointer
	FLAGS uint8 = 14 // status byte, bit 0 = ZERO
	RUN   uint8 = 15 // machine-running flag
	EXT   uint8 = 16 // exit code
)

// ZeroFlag is the bit of FLAGS observed by conditional branches.
const ZeroFlag = 1 << 0

// RegisterFile is a fixed bank of 64 register slots of 8 bytes each.
// Each slot is addressed by a 6-bit code and read or written over a
// caller-chosen byte-width sub-slice; narrower widths zero-extend on read
// and zero-fill the slot before copying on write.
type RegisterFile struct {
	slots [RegisterCount][8]byte
}

// nativeWidth is the natural byte-width of a register when none is given
// explicitly by an instruction operand. FLAGS and RUN are single-byte
// status registers; everything else defaults to the full 8-byte slot.
func nativeWidth(reg uint8) uint8 {
	switch reg {
	case FLAGS, RUN:
		return 1
	default:
		return 8
	}
}

func checkReg(reg uint8) error {
	if reg >= RegisterCount {
		return &Fault{Kind: InvalidRegister, Addr: uint64(reg)}
	}
	return nil
}

// Write zero-fills the target slot, then copies at most width bytes from
// b into its low end. Excess source bytes are truncated.
func (r *RegisterFile) Write(reg uint8, width uint8, b []byte) error {
	if err := checkReg(reg); err != nil {
		return err
	}
	slot := &r.slots[reg]
	for i := range slot {
		slot[i] = 0
	}
	n := int(width)
	if n > 8 {
		n = 8
	}
	if len(b) < n {
		n = len(b)
	}
	copy(slot[:n], b[:n])
	return nil
}

// WriteNative is Write with reg's native width (the default for
// registers addressed without an explicit width, such as FLAGS or RUN).
func (r *RegisterFile) WriteNative(reg uint8, b []byte) error {
	return r.Write(reg, nativeWidth(reg), b)
}

// WriteUint64 reinterprets value as width little-endian bytes and writes
// it the same way as Write.
func (r *RegisterFile) WriteUint64(reg uint8, width uint8, value uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return r.Write(reg, width, buf[:])
}

// Read returns width raw bytes backing reg.
func (r *RegisterFile) Read(reg uint8, width uint8) ([]byte, error) {
	if err := checkReg(reg); err != nil {
		return nil, err
	}
	if width > 8 {
		width = 8
	}
	slot := r.slots[reg]
	out := make([]byte, width)
	copy(out, slot[:width])
	return out, nil
}

// ReadNative is Read with reg's native width.
func (r *RegisterFile) ReadNative(reg uint8) ([]byte, error) {
	return r.Read(reg, nativeWidth(reg))
}

// ReadUint64 reads width bytes, zero-extends to 8 bytes and returns the
// little-endian reinterpretation.
func (r *RegisterFile) ReadUint64(reg uint8, width uint8) (uint64, error) {
	b, err := r.Read(reg, width)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadUint64Native is ReadUint64 with reg's native width.
func (r *RegisterFile) ReadUint64Native(reg uint8) (uint64, error) {
	return r.ReadUint64(reg, nativeWidth(reg))
}

// RegByte is the single-byte register operand encoding used by the
// instruction stream: the top two bits select the access width
// (0b00→1, 0b01→2, 0b10→4, 0b11→8) and the low six bits are the
// register code.
type RegByte uint8

var codeToWidth = [4]uint8{1, 2, 4, 8}
var widthToCode = map[uint8]uint8{1: 0b00, 2: 0b01, 4: 0b10, 8: 0b11}

// EncodeRegByte packs reg and width into a single instruction-stream byte.
func EncodeRegByte(reg uint8, width uint8) RegByte {
	return RegByte((widthToCode[width] << 6) | (reg & 0x3f))
}

// Code returns the register code encoded in b.
func (b RegByte) Code() uint8 {
	return uint8(b) & 0x3f
}

// Width returns the access width encoded in b.
func (b RegByte) Width() uint8 {
	return codeToWidth[uint8(b)>>6]
}
