package vm

import "fmt"

// Listing is a single disassembled instruction: its address, decoded
// opcode, and the raw operand bytes that follow it.
type Listing struct {
	IP      uint64
	Op      Opcode
	Operand []byte
}

// String renders a listing line as "<ip>: <mnemonic> <operand bytes>",
// the format the debugger REPL prints for `list`.
func (l Listing) String() string {
	if len(l.Operand) == 0 {
		return fmt.Sprintf("%08x: %s", l.IP, l.Op)
	}
	return fmt.Sprintf("%08x: %-8s % x", l.IP, l.Op, l.Operand)
}

// Disassemble walks mem from start for length bytes, decoding one
// instruction at a time. An unknown opcode byte is listed as a one-byte
// UNKNOWN entry and the walk goes on. It stops at the first instruction
// whose bytes cannot be read from mem, returning the entries so far
// together with that error — callers use it for best-effort listings,
// not for execution.
func Disassemble(mem *Memory, start uint64, length int) ([]Listing, error) {
	var out []Listing
	ip := start
	end := start + uint64(length)
	for ip < end {
		d, err := Decode(mem, ip)
		if err != nil {
			return out, err
		}
		operand, err := mem.Read(ip+1, d.Length-1)
		if err != nil {
			return out, err
		}
		out = append(out, Listing{IP: ip, Op: d.Op, Operand: operand})
		ip += uint64(d.Length)
	}
	return out, nil
}
