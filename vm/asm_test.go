package vm_test

import (
	"encoding/binary"

	"github.com/KCreate/stack-machine/vm"
)

// Tiny hand-assembler helpers shared by the test files in this package.
// They build raw instruction streams byte by byte, mirroring how a real
// assembler or compiler back end would emit them.

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func i64le(v int64) []byte {
	return u64le(uint64(v))
}

func regByte(reg uint8, width uint8) byte {
	return byte(vm.EncodeRegByte(reg, width))
}

type asm struct {
	buf []byte
}

func (a *asm) emit(b ...byte) *asm {
	a.buf = append(a.buf, b...)
	return a
}

func (a *asm) bytes(b []byte) *asm {
	a.buf = append(a.buf, b...)
	return a
}

func (a *asm) nop() *asm { return a.emit(byte(vm.OpNOP)) }

func (a *asm) loadi(reg uint8, width uint8, value []byte) *asm {
	return a.emit(byte(vm.OpLOADI), regByte(reg, width)).bytes(u32le(uint32(len(value)))).bytes(value)
}

func (a *asm) mov(dst, dstWidth, src, srcWidth uint8) *asm {
	return a.emit(byte(vm.OpMOV), regByte(dst, dstWidth), regByte(src, srcWidth))
}

func (a *asm) rst(reg, width uint8) *asm {
	return a.emit(byte(vm.OpRST), regByte(reg, width))
}

func (a *asm) push(value []byte) *asm {
	return a.emit(byte(vm.OpPUSH)).bytes(u32le(uint32(len(value)))).bytes(value)
}

func (a *asm) rpush(reg, width uint8) *asm {
	return a.emit(byte(vm.OpRPUSH), regByte(reg, width))
}

func (a *asm) rpop(reg, width uint8, sz uint32) *asm {
	return a.emit(byte(vm.OpRPOP), regByte(reg, width)).bytes(u32le(sz))
}

func (a *asm) store(off int64, srcReg, srcWidth uint8) *asm {
	return a.emit(byte(vm.OpSTORE)).bytes(i64le(off)).emit(regByte(srcReg, srcWidth))
}

func (a *asm) load(dstReg, dstWidth uint8, sz uint32, off int64) *asm {
	return a.emit(byte(vm.OpLOAD), regByte(dstReg, dstWidth)).bytes(u32le(sz)).bytes(i64le(off))
}

func (a *asm) readc(dstReg, dstWidth uint8, addr uint64) *asm {
	return a.emit(byte(vm.OpREADC), regByte(dstReg, dstWidth)).bytes(u64le(addr))
}

func (a *asm) writec(addr uint64, srcReg, srcWidth uint8) *asm {
	return a.emit(byte(vm.OpWRITEC)).bytes(u64le(addr)).emit(regByte(srcReg, srcWidth))
}

func (a *asm) jmp(addr uint64) *asm {
	return a.emit(byte(vm.OpJMP)).bytes(u64le(addr))
}

func (a *asm) jz(addr uint64) *asm {
	return a.emit(byte(vm.OpJZ)).bytes(u64le(addr))
}

func (a *asm) call(addr uint64) *asm {
	return a.emit(byte(vm.OpCALL)).bytes(u64le(addr))
}

func (a *asm) ret() *asm {
	return a.emit(byte(vm.OpRET))
}

func (a *asm) syscall() *asm {
	return a.emit(byte(vm.OpSYSCALL))
}
