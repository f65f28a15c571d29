package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KCreate/stack-machine/vm"
)

var _ = Describe("RegisterFile", func() {
	var regs *vm.RegisterFile

	BeforeEach(func() {
		regs = &vm.RegisterFile{}
	})

	It("zero-extends a narrow read of an untouched slot", func() {
		v, err := regs.ReadUint64(vm.R0, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint64(0)))
	})

	It("round-trips a full 8-byte write", func() {
		Expect(regs.WriteUint64(vm.R3, 8, 0xdeadbeefcafef00d)).To(Succeed())
		v, err := regs.ReadUint64(vm.R3, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint64(0xdeadbeefcafef00d)))
	})

	It("zero-fills the rest of the slot on a narrower write", func() {
		Expect(regs.WriteUint64(vm.R0, 8, 0xffffffffffffffff)).To(Succeed())
		Expect(regs.WriteUint64(vm.R0, 1, 0x42)).To(Succeed())
		v, err := regs.ReadUint64(vm.R0, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint64(0x42)))
	})

	It("rejects a register code outside the bank", func() {
		_, err := regs.Read(vm.RegisterCount, 8)
		Expect(err).To(HaveOccurred())
		var fault *vm.Fault
		Expect(err).To(BeAssignableToTypeOf(fault))
	})

	It("round-trips through a RegByte operand encoding", func() {
		b := vm.EncodeRegByte(vm.R5, 4)
		Expect(b.Code()).To(Equal(vm.R5))
		Expect(b.Width()).To(Equal(uint8(4)))
	})
})
