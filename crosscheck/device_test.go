package crosscheck

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fabricnaming/circuitlib"
	"github.com/sarchlab/fabricnaming/fabric"
	"github.com/sarchlab/fabricnaming/naming"
)

var _ = Describe("RegisterDevice", func() {
	var (
		l *Ledger
		s *naming.Synthesizer
		d Device
	)

	BeforeEach(func() {
		l = MakeBuilder().Build()
		lib := circuitlib.NewCircuitLibrary()
		lib.Seal()
		s = naming.MakeBuilder().WithLibrary(lib).Build()
		d = Device{Size: fabric.P(4, 5), ChannelWidth: 3, PinsPerSide: 2}
	})

	It("should give every entity a distinct name", func() {
		Expect(func() { RegisterDevice(l, "verilog", s, d) }).NotTo(Panic())

		name, found := l.Lookup("verilog", "sb(1,4)")
		Expect(found).To(BeTrue())
		Expect(name).To(Equal("sb_1__4_"))

		_, found = l.Lookup("verilog", "track CHANX(2,3)/5/out")
		Expect(found).To(BeFalse())

		name, found = l.Lookup("verilog", "track CHANX(2,3)/2/out")
		Expect(found).To(BeTrue())
		Expect(name).To(Equal("chanx_2__3__out_2_"))

		entity, found := l.Owner("verilog", "grid_clb")
		Expect(found).To(BeTrue())
		Expect(entity).To(Equal("grid module clb/core"))

		_, found = l.Owner("verilog", "grid_io_left")
		Expect(found).To(BeTrue())
	})

	It("should count registrations", func() {
		tiles := 4 * 5
		perTile := 1 + 2*(2+3*3) + 1 + 4*2
		Expect(RegisterDevice(l, "verilog", s, d)).
			To(Equal(3 + tiles*perTile))
	})

	It("should agree with itself across backends", func() {
		RegisterDevice(l, "verilog", s, d)
		RegisterDevice(l, "spice", s, d)

		Expect(l.Check()).To(BeEmpty())
	})

	It("should find entities a backend skipped", func() {
		RegisterDevice(l, "verilog", s, d)

		d.ChannelWidth = 2
		RegisterDevice(l, "spice", s, d)

		Expect(l.Check()).NotTo(BeEmpty())
		for _, m := range l.Check() {
			Expect(m.Missing).To(Equal([]string{"spice"}))
		}
	})

	It("should reject devices without a core", func() {
		d.Size = fabric.P(2, 5)
		Expect(func() { RegisterDevice(l, "verilog", s, d) }).To(Panic())
	})
})
