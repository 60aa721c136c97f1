package fabric

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Side", func() {
	It("should use the side order as the side code", func() {
		Expect(Top.Code()).To(Equal(0))
		Expect(Right.Code()).To(Equal(1))
		Expect(Bottom.Code()).To(Equal(2))
		Expect(Left.Code()).To(Equal(3))
	})

	It("should have short names", func() {
		Expect(Top.String()).To(Equal("top"))
		Expect(Right.String()).To(Equal("right"))
		Expect(Bottom.String()).To(Equal("bottom"))
		Expect(Left.String()).To(Equal("left"))
	})

	It("should find the opposite side", func() {
		Expect(Top.Opposite()).To(Equal(Bottom))
		Expect(Left.Opposite()).To(Equal(Right))
	})

	It("should parse side names", func() {
		s, err := ParseSide("BOTTOM")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(Bottom))

		_, err = ParseSide("north")
		Expect(err).To(HaveOccurred())
	})

	It("should panic on an invalid side", func() {
		Expect(Side(7).String()).To(Equal("Side(7)"))
		Expect(func() { Side(7).Code() }).To(Panic())
		Expect(func() { Side(-1).MustBeValid() }).To(Panic())
	})
})

var _ = Describe("ChanType", func() {
	It("should map channel types to prefixes", func() {
		Expect(ChanX.Prefix()).To(Equal("chanx"))
		Expect(ChanY.Prefix()).To(Equal("chany"))
	})

	It("should panic on the zero value", func() {
		var t ChanType
		Expect(func() { t.Prefix() }).To(Panic())
	})

	It("should parse channel types", func() {
		t, err := ParseChanType("CHANY")
		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(Equal(ChanY))

		_, err = ParseChanType("z")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("PortDirection", func() {
	It("should parse directions", func() {
		d, err := ParseDirection("OUT")
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(Equal(Out))

		_, err = ParseDirection("inout")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Point", func() {
	It("should panic on negative components", func() {
		Expect(func() { P(-1, 0).MustBeValid() }).To(Panic())
		Expect(func() { P(0, 0).MustBeValid() }).NotTo(Panic())
	})

	It("should print as a pair", func() {
		Expect(P(2, 3).String()).To(Equal("(2,3)"))
	})
})

var _ = Describe("Border", func() {
	size := P(6, 5)

	It("should find the border side", func() {
		side, ok := FindGridBorderSide(size, P(2, 4))
		Expect(ok).To(BeTrue())
		Expect(side).To(Equal(Top))

		side, ok = FindGridBorderSide(size, P(5, 2))
		Expect(ok).To(BeTrue())
		Expect(side).To(Equal(Right))

		side, ok = FindGridBorderSide(size, P(3, 0))
		Expect(ok).To(BeTrue())
		Expect(side).To(Equal(Bottom))

		side, ok = FindGridBorderSide(size, P(0, 2))
		Expect(ok).To(BeTrue())
		Expect(side).To(Equal(Left))
	})

	It("should resolve corners top first", func() {
		side, ok := FindGridBorderSide(size, P(0, 4))
		Expect(ok).To(BeTrue())
		Expect(side).To(Equal(Top))
	})

	It("should report core locations", func() {
		_, ok := FindGridBorderSide(size, P(2, 2))
		Expect(ok).To(BeFalse())
	})

	It("should tell core grids next to the border", func() {
		Expect(IsCoreGridOnBorderSide(size, P(2, 3), Top)).To(BeTrue())
		Expect(IsCoreGridOnBorderSide(size, P(4, 2), Right)).To(BeTrue())
		Expect(IsCoreGridOnBorderSide(size, P(2, 1), Bottom)).To(BeTrue())
		Expect(IsCoreGridOnBorderSide(size, P(1, 2), Left)).To(BeTrue())
		Expect(IsCoreGridOnBorderSide(size, P(2, 2), Left)).To(BeFalse())
	})
})
