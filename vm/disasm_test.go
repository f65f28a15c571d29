package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KCreate/stack-machine/vm"
)

var _ = Describe("Disassemble", func() {
	It("lists one entry per instruction, in order", func() {
		prog := (&asm{}).loadi(vm.R0, 8, u64le(1)).mov(vm.R1, 8, vm.R0, 8).ret()
		mem := vm.NewMemory(64)
		Expect(mem.Write(0, prog.buf)).To(Succeed())

		listing, err := vm.Disassemble(mem, 0, len(prog.buf))
		Expect(err).NotTo(HaveOccurred())
		Expect(listing).To(HaveLen(3))
		Expect(listing[0].Op).To(Equal(vm.OpLOADI))
		Expect(listing[1].Op).To(Equal(vm.OpMOV))
		Expect(listing[2].Op).To(Equal(vm.OpRET))
		Expect(listing[2].IP).To(Equal(uint64(len(prog.buf) - 1)))
	})
})
