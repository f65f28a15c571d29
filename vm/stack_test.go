package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KCreate/stack-machine/vm"
)

var _ = Describe("Stack", func() {
	var (
		mem   *vm.Memory
		regs  *vm.RegisterFile
		stack *vm.Stack
	)

	BeforeEach(func() {
		mem = vm.NewMemory(64)
		regs = &vm.RegisterFile{}
		Expect(regs.WriteUint64(vm.SP, 8, 16)).To(Succeed())
		stack = vm.NewStack(mem, regs)
	})

	It("pushes then pops the same bytes back", func() {
		Expect(stack.Push([]byte{1, 2, 3, 4})).To(Succeed())
		b, err := stack.Pop(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal([]byte{1, 2, 3, 4}))

		sp, err := regs.ReadUint64(vm.SP, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(sp).To(Equal(uint64(16)))
	})

	It("advances SP by the push size and rewinds it on pop", func() {
		Expect(stack.Push([]byte{0xaa})).To(Succeed())
		sp, err := regs.ReadUint64(vm.SP, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(sp).To(Equal(uint64(17)))

		_, err = stack.Pop(1)
		Expect(err).NotTo(HaveOccurred())
		sp, err = regs.ReadUint64(vm.SP, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(sp).To(Equal(uint64(16)))
	})

	It("peeks without moving SP", func() {
		Expect(stack.Push([]byte{7, 8})).To(Succeed())
		b, err := stack.Peek(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal([]byte{7, 8}))

		sp, err := regs.ReadUint64(vm.SP, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(sp).To(Equal(uint64(18)))
	})

	It("zero-extends a narrow pop through PopUint64", func() {
		Expect(stack.Push(u32le(42))).To(Succeed())
		v, err := stack.PopUint64(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint64(42)))
	})
})
