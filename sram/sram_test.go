package sram

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Organization", func() {
	It("should treat the zero value as invalid", func() {
		var o Organization
		Expect(o.Valid()).To(BeFalse())
		Expect(o.PortRoles()).To(BeEmpty())
		Expect(Standalone.Valid()).To(BeTrue())
	})

	DescribeTable("parsing",
		func(name string, expected Organization) {
			o, err := ParseOrganization(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(o).To(Equal(expected))
			Expect(o.String()).To(Equal(expected.String()))
		},
		Entry("standalone", "standalone", Standalone),
		Entry("scan chain", "scan_chain", ScanChain),
		Entry("memory bank", "Memory-Bank", MemoryBank),
	)

	It("should reject unknown organizations", func() {
		_, err := ParseOrganization("frame")
		Expect(err).To(HaveOccurred())
	})

	It("should list the roles of each organization", func() {
		Expect(Standalone.PortRoles()).To(ConsistOf(RoleInput, RoleOutput))
		Expect(ScanChain.PortRoles()).To(ConsistOf(RoleHead, RoleTail))
		Expect(MemoryBank.PortRoles()).
			To(ConsistOf(RoleBL, RoleWL, RoleBLB, RoleWLB))
		Expect(ScanChain.LocalPortRoles()).To(ContainElement(RoleInOut))
		Expect(MemoryBank.LocalPortRoles()).NotTo(ContainElement(RoleBL))
	})
})

var _ = Describe("PortRole", func() {
	It("should parse chain aliases", func() {
		r, err := ParseRole("head")
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal(RoleHead))

		r, err = ParseRole("TAIL")
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal(RoleTail))

		_, err = ParseRole("clk")
		Expect(err).To(HaveOccurred())
	})
})
