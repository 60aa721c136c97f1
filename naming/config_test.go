package naming

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fabricnaming/circuitlib"
	"github.com/sarchlab/fabricnaming/sram"
)

var _ = Describe("Configuration names", func() {
	var (
		s         *Synthesizer
		sramModel circuitlib.ModelID
	)

	BeforeEach(func() {
		lib := circuitlib.NewCircuitLibrary()
		sramModel = lib.AddModel("sram6t", circuitlib.KindSRAM)
		lib.Seal()
		s = MakeBuilder().WithLibrary(lib).Build()
	})

	DescribeTable("module SRAM ports",
		func(org sram.Organization, role sram.PortRole, expected string) {
			Expect(s.SRAMPortName(org, sramModel, role)).To(Equal(expected))
		},
		Entry("standalone output", sram.Standalone, sram.RoleInput,
			"sram6t_out"),
		Entry("standalone inverted output", sram.Standalone, sram.RoleOutput,
			"sram6t_outb"),
		Entry("chain head", sram.ScanChain, sram.RoleHead,
			"sram6t_ccff_head"),
		Entry("chain tail", sram.ScanChain, sram.RoleTail,
			"sram6t_ccff_tail"),
		Entry("bit line", sram.MemoryBank, sram.RoleBL, "sram6t_bl"),
		Entry("word line", sram.MemoryBank, sram.RoleWL, "sram6t_wl"),
		Entry("inverted bit line", sram.MemoryBank, sram.RoleBLB,
			"sram6t_blb"),
		Entry("inverted word line", sram.MemoryBank, sram.RoleWLB,
			"sram6t_wlb"),
	)

	DescribeTable("roles that the organization does not have",
		func(org sram.Organization, role sram.PortRole) {
			Expect(func() { s.SRAMPortName(org, sramModel, role) }).To(Panic())
		},
		Entry("bit line under standalone", sram.Standalone, sram.RoleBL),
		Entry("word line under standalone", sram.Standalone, sram.RoleWL),
		Entry("bit line under scan chain", sram.ScanChain, sram.RoleBL),
		Entry("inout under scan chain", sram.ScanChain, sram.RoleInOut),
		Entry("head under memory bank", sram.MemoryBank, sram.RoleHead),
		Entry("invalid organization", sram.OrganizationInvalid,
			sram.RoleInput),
	)

	DescribeTable("local SRAM buses",
		func(org sram.Organization, role sram.PortRole, expected string) {
			Expect(s.SRAMLocalPortName(org, sramModel, role)).
				To(Equal(expected))
		},
		Entry(nil, sram.Standalone, sram.RoleInput, "sram6t_out_local_bus"),
		Entry(nil, sram.Standalone, sram.RoleOutput, "sram6t_outb_local_bus"),
		Entry(nil, sram.MemoryBank, sram.RoleInput, "sram6t_out_local_bus"),
		Entry(nil, sram.ScanChain, sram.RoleInput,
			"sram6t_ccff_in_local_bus"),
		Entry(nil, sram.ScanChain, sram.RoleOutput,
			"sram6t_ccff_out_local_bus"),
		Entry(nil, sram.ScanChain, sram.RoleInOut,
			"sram6t_ccff_outb_local_bus"),
	)

	It("should reject local bus roles the organization does not have", func() {
		Expect(func() {
			s.SRAMLocalPortName(sram.Standalone, sramModel, sram.RoleInOut)
		}).To(Panic())
		Expect(func() {
			s.SRAMLocalPortName(sram.MemoryBank, sramModel, sram.RoleWL)
		}).To(Panic())
	})

	It("should cover every role each organization lists", func() {
		for _, org := range []sram.Organization{
			sram.Standalone, sram.ScanChain, sram.MemoryBank,
		} {
			for _, role := range org.PortRoles() {
				Expect(func() { s.SRAMPortName(org, sramModel, role) }).
					NotTo(Panic())
			}

			for _, role := range org.LocalPortRoles() {
				Expect(func() { s.SRAMLocalPortName(org, sramModel, role) }).
					NotTo(Panic())
			}
		}
	})

	It("should name local SRAM ports of an instance", func() {
		Expect(s.LocalSRAMPortName("lut4", 3, sram.RoleInput)).
			To(Equal("lut4_3_out"))
		Expect(s.LocalSRAMPortName("lut4", 3, sram.RoleOutput)).
			To(Equal("lut4_3_outb"))
	})

	It("should name reserved and formal verification ports", func() {
		Expect(ReservedSRAMPortName(sram.RoleBLB)).To(Equal("reserved_blb"))
		Expect(ReservedSRAMPortName(sram.RoleWL)).To(Equal("reserved_wl"))
		Expect(func() { ReservedSRAMPortName(sram.RoleBL) }).To(Panic())
		Expect(s.FormalVerificationSRAMPortName(sramModel)).
			To(Equal("sram6t_out_fm"))
	})

	It("should keep the fixed names", func() {
		Expect(ConfigChainHeadName).To(Equal("ccff_head"))
		Expect(ConfigChainTailName).To(Equal("ccff_tail"))
		Expect(ConfigChainDataOutName).To(Equal("mem_out"))
		Expect(ConfigChainInvertedDataOutName).To(Equal("mem_outb"))
		Expect(MuxLocalDecoderAddrPortName).To(Equal("addr"))
		Expect(MuxLocalDecoderDataPortName).To(Equal("data"))
		Expect(MuxLocalDecoderDataInvPortName).To(Equal("data_inv"))
		Expect(LocalConfigBusPortName).To(Equal("config_bus"))
	})
})

var _ = Describe("Top-level names", func() {
	It("should name the top module", func() {
		Expect(FPGATopModuleName()).To(Equal("fpga_top"))
		Expect(FPGATopNetlistName(".v")).To(Equal("fpga_top.v"))
	})

	It("should name constant modules", func() {
		Expect(ConstValueModuleName(0)).To(Equal("const0"))
		Expect(ConstValueModuleOutputPortName(1)).To(Equal("const1"))
		Expect(func() { ConstValueModuleName(2) }).To(Panic())
	})

	It("should name global I/O ports", func() {
		lib := circuitlib.NewCircuitLibrary()
		pad := lib.AddModel("iopad", circuitlib.KindIOPad)
		lib.Seal()
		s := MakeBuilder().WithLibrary(lib).Build()

		Expect(s.FPGAGlobalIOPortName("gfpga_pad_", pad)).
			To(Equal("gfpga_pad_iopad"))
	})
})
