package naming

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/fabricnaming/circuitlib"
	"github.com/sarchlab/fabricnaming/sram"
)

var _ = Describe("Multiplexer names", func() {
	const (
		muxModel  circuitlib.ModelID = 0
		lutModel  circuitlib.ModelID = 1
		tgate     circuitlib.ModelID = 2
		mux2Cell  circuitlib.ModelID = 3
		andCell   circuitlib.ModelID = 4
		sramModel circuitlib.ModelID = 5
	)

	var (
		mockCtrl *gomock.Controller
		lib      *MockLibrary
		s        *Synthesizer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		lib = NewMockLibrary(mockCtrl)
		s = MakeBuilder().WithLibrary(lib).Build()

		lib.EXPECT().ModelName(muxModel).Return("mux_tree").AnyTimes()
		lib.EXPECT().ModelType(muxModel).Return(circuitlib.KindMux).AnyTimes()
		lib.EXPECT().ModelName(lutModel).Return("lut4").AnyTimes()
		lib.EXPECT().ModelType(lutModel).Return(circuitlib.KindLUT).AnyTimes()
		lib.EXPECT().ModelName(tgate).Return("TGATE").AnyTimes()
		lib.EXPECT().ModelType(tgate).
			Return(circuitlib.KindPassGate).AnyTimes()
		lib.EXPECT().ModelName(mux2Cell).Return("MUX2").AnyTimes()
		lib.EXPECT().ModelType(mux2Cell).Return(circuitlib.KindGate).AnyTimes()
		lib.EXPECT().GateType(mux2Cell).Return(circuitlib.GateMux2).AnyTimes()
		lib.EXPECT().ModelName(andCell).Return("AND2").AnyTimes()
		lib.EXPECT().ModelType(andCell).Return(circuitlib.KindGate).AnyTimes()
		lib.EXPECT().GateType(andCell).Return(circuitlib.GateAnd).AnyTimes()
		lib.EXPECT().ModelName(sramModel).Return("sram").AnyTimes()
		lib.EXPECT().ModelType(sramModel).Return(circuitlib.KindSRAM).AnyTimes()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("module names", func() {
		It("should encode the size of multiplexers", func() {
			Expect(s.MuxModuleName(muxModel, 4, "")).To(Equal("mux_tree_size4"))
		})

		It("should not encode the size of LUTs", func() {
			Expect(s.MuxModuleName(lutModel, 16, "")).To(Equal("lut4_mux"))
			Expect(s.MuxModuleName(lutModel, 4, "")).
				To(Equal(s.MuxModuleName(lutModel, 16, "")))
		})

		It("should append the postfix", func() {
			Expect(s.MuxModuleName(muxModel, 8, "_tail")).
				To(Equal("mux_tree_size8_tail"))
			Expect(s.MuxModuleName(lutModel, 8, "_tail")).
				To(Equal("lut4_mux_tail"))
		})

		It("should panic on other kinds of model", func() {
			Expect(func() { s.MuxModuleName(sramModel, 2, "") }).To(Panic())
		})
	})

	Context("branch names", func() {
		It("should fold the branch size into the postfix", func() {
			lib.EXPECT().PassGateLogicModel(muxModel).Return(tgate)

			Expect(s.MuxBranchModuleName(muxModel, 8, 2, "_x")).
				To(Equal("mux_tree_size8_size2_x"))
		})

		It("should use a MUX2 standard cell as the branch", func() {
			lib.EXPECT().PassGateLogicModel(muxModel).Return(mux2Cell)

			Expect(s.MuxBranchModuleName(muxModel, 8, 2, "_x")).
				To(Equal("MUX2"))
		})

		It("should panic if the gate is not a MUX2", func() {
			lib.EXPECT().PassGateLogicModel(muxModel).Return(andCell)

			Expect(func() { s.MuxBranchModuleName(muxModel, 8, 2, "") }).
				To(Panic())
		})
	})

	Context("ports", func() {
		It("should name input buses per instance", func() {
			Expect(s.MuxInputBusPortName(muxModel, 4, 3)).
				To(Equal("mux_tree_size4_3_inbus"))
			Expect(s.MuxInputBusPortName(muxModel, 4, 3)).
				NotTo(Equal(s.MuxInputBusPortName(muxModel, 4, 4)))
		})

		It("should name configuration buses", func() {
			Expect(s.MuxConfigBusPortName(muxModel, 4, 1, false)).
				To(Equal("mux_tree_size4_configbus1"))
			Expect(s.MuxConfigBusPortName(muxModel, 4, 1, true)).
				To(Equal("mux_tree_size4_configbus1_b"))
		})

		It("should name SRAM ports per instance", func() {
			Expect(s.MuxSRAMPortName(muxModel, 4, 2, sram.RoleInput)).
				To(Equal("mux_tree_size4_2_out"))
			Expect(s.MuxSRAMPortName(lutModel, 4, 2, sram.RoleOutput)).
				To(Equal("lut4_mux_2_outb"))
			Expect(func() {
				s.MuxSRAMPortName(muxModel, 4, 2, sram.RoleBL)
			}).To(Panic())
		})
	})

	It("should panic on negative sizes and indices", func() {
		Expect(func() { s.MuxModuleName(muxModel, -4, "") }).To(Panic())
		Expect(func() { s.MuxBranchModuleName(muxModel, 8, -2, "") }).
			To(Panic())
		Expect(func() { s.MuxInputBusPortName(muxModel, 4, -1) }).To(Panic())
		Expect(func() { s.MuxConfigBusPortName(muxModel, 4, -1, false) }).
			To(Panic())
		Expect(func() { s.MuxSRAMPortName(muxModel, 4, -1, sram.RoleInput) }).
			To(Panic())
		Expect(func() { s.SegmentWireModuleName("wire", -1) }).To(Panic())
		Expect(func() { MuxNodeName(-1, false) }).To(Panic())
		Expect(func() { MuxBranchInstanceName(0, -1, false) }).To(Panic())
		Expect(func() { LocalDecoderModuleName(-1, 2) }).To(Panic())
	})

	It("should name memory modules", func() {
		Expect(s.MemoryModuleName(muxModel, sramModel, "_mem")).
			To(Equal("mux_tree_sram_mem"))
	})

	It("should name segment wires", func() {
		Expect(s.SegmentWireModuleName("chan_segment", 2)).
			To(Equal("chan_segment_seg2"))
		Expect(s.SegmentWireMidOutputName("out")).To(Equal("mid_out"))
	})
})

var _ = Describe("Multiplexer structure names", func() {
	It("should name nodes", func() {
		Expect(MuxNodeName(2, false)).To(Equal("mux_l2_in"))
		Expect(MuxNodeName(2, true)).To(Equal("mux_l2_in_buf"))
	})

	It("should name branch instances", func() {
		Expect(MuxBranchInstanceName(1, 3, false)).To(Equal("mux_l1_in_3_"))
		Expect(MuxBranchInstanceName(1, 3, true)).To(Equal("mux_l1_in_buf_3_"))
	})

	It("should name local decoders", func() {
		Expect(LocalDecoderModuleName(3, 8)).To(Equal("decoder3to8"))
	})
})
