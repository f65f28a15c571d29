package vm_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KCreate/stack-machine/vm"
)

var _ = Describe("LoadTable", func() {
	It("round-trips a single-record image through DecodeLoadTable and Flatten", func() {
		payload := []byte{byte(vm.OpNOP), byte(vm.OpRET)}
		encoded := vm.EncodeImage(payload, 0)

		lt, err := vm.DecodeLoadTable(bytes.NewReader(encoded))
		Expect(err).NotTo(HaveOccurred())
		Expect(lt.Records).To(HaveLen(1))
		Expect(lt.Records[0].TargetAddress).To(Equal(uint64(0)))
		Expect(lt.Records[0].Size).To(Equal(uint32(len(payload))))

		flat, err := lt.Flatten(16)
		Expect(err).NotTo(HaveOccurred())
		Expect(flat[:2]).To(Equal(payload))
	})

	It("rejects a file too short to hold its declared load table", func() {
		_, err := vm.DecodeLoadTable(bytes.NewReader([]byte{'S', 'M', 'V', 'M', 1, 0, 0, 0, 5, 0, 0, 0}))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a bad magic", func() {
		_, err := vm.DecodeLoadTable(bytes.NewReader([]byte("NOPE0000000000000000")))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a load record whose target exceeds memory size", func() {
		payload := []byte{1, 2, 3, 4}
		encoded := vm.EncodeImage(payload, 1<<20)
		lt, err := vm.DecodeLoadTable(bytes.NewReader(encoded))
		Expect(err).NotTo(HaveOccurred())

		_, err = lt.Flatten(64)
		Expect(err).To(HaveOccurred())
	})
})
